package game

import (
	"context"
	"fmt"
)

func (o *orchestrator) executeBattle(ctx context.Context, s *Session, mode modeBattle, cmd string) *ExecuteOutput {
	switch cmd {
	case "attack":
		return o.executeAttack(ctx, s, mode)
	case "flee":
		return o.executeFlee(ctx, s, mode)
	case "help":
		return &ExecuteOutput{Lines: helpLines()}
	case "stats":
		return &ExecuteOutput{Lines: statsLines(s.profile)}
	case "inventory":
		return &ExecuteOutput{Lines: inventoryLines(s.profile)}
	case "heal":
		return o.executeHeal(ctx, s)
	}
	return &ExecuteOutput{Lines: []string{fmt.Sprintf("%s is upon you! 'attack' or 'flee'.", mode.enemy.name)}}
}

func (o *orchestrator) executeAttack(ctx context.Context, s *Session, mode modeBattle) *ExecuteOutput {
	enemy := mode.enemy
	dmg := o.roller.RollRange(playerHitMin, playerHitMax)
	enemy.hp -= dmg
	lines := []string{fmt.Sprintf("You strike %s for %d damage.", enemy.name, dmg)}

	if enemy.hp <= 0 {
		lines = append(lines, o.resolveVictory(s, enemy)...)
		return &ExecuteOutput{Lines: o.saveProfile(ctx, s, lines)}
	}

	lines = append(lines, fmt.Sprintf("%s has %d HP left.", enemy.name, enemy.hp))
	s.mode = modeBattle{enemy: enemy}
	lines = append(lines, o.resolveCounterAttack(s, enemy)...)
	return &ExecuteOutput{Lines: o.saveProfile(ctx, s, lines)}
}

func (o *orchestrator) executeFlee(ctx context.Context, s *Session, mode modeBattle) *ExecuteOutput {
	p := s.profile
	enemy := mode.enemy

	if o.roller.Chance(fleeChancePct) {
		penalty := p.Gold * fleeGoldPenaltyPct / 100
		p.Gold -= penalty
		loss := fleeProgressLoss
		if enemy.boss {
			loss = bossFleeProgressLoss
		}
		p.DistrictProgress -= loss
		if p.DistrictProgress < 0 {
			p.DistrictProgress = 0
		}
		s.mode = modeIdle{}
		lines := []string{
			fmt.Sprintf("You slip away from %s, dropping %d gold in your haste.", enemy.name, penalty),
			fmt.Sprintf("Progress falls to %d%%.", p.DistrictProgress),
		}
		return &ExecuteOutput{Lines: o.saveProfile(ctx, s, lines)}
	}

	lines := []string{fmt.Sprintf("%s blocks your escape!", enemy.name)}
	lines = append(lines, o.resolveCounterAttack(s, enemy)...)
	return &ExecuteOutput{Lines: o.saveProfile(ctx, s, lines)}
}

// resolveVictory grants the kill reward and, for a boss, records the
// district completion. Level only rises the first time a district falls.
func (o *orchestrator) resolveVictory(s *Session, enemy battleEnemy) []string {
	p := s.profile
	reward := enemy.gold
	if reward == 0 {
		reward = defaultKillGold
	}
	p.Gold += reward
	lines := []string{
		fmt.Sprintf("%s falls!", enemy.name),
		fmt.Sprintf("You loot %d gold.", reward),
	}

	if enemy.boss {
		district := p.CurrentDistrict
		if p.CompleteDistrict(district) {
			p.Level++
			lines = append(lines, fmt.Sprintf("Level up! You are now level %d.", p.Level))
		}
		p.CurrentDistrict = ""
		p.DistrictProgress = 0
		lines = append(lines, fmt.Sprintf("%s is conquered! Use 'start' to pick your next district.", district))
	}

	s.mode = modeIdle{}
	return lines
}

// resolveCounterAttack applies the enemy's return blow and, on a lethal
// hit, the death penalty.
func (o *orchestrator) resolveCounterAttack(s *Session, enemy battleEnemy) []string {
	p := s.profile
	att := enemy.attack
	if att == 0 {
		att = defaultEnemyAttack
	}
	dmg := o.roller.RollRange(0, att-1)
	p.HP -= dmg
	lines := []string{fmt.Sprintf("%s hits you for %d damage.", enemy.name, dmg)}

	if p.HP <= 0 {
		penalty := p.Gold * deathGoldPenaltyPct / 100
		p.Gold -= penalty
		p.HP = deathRestoreHP
		p.DistrictProgress = 0
		s.mode = modeIdle{}
		lines = append(lines,
			"You collapse...",
			fmt.Sprintf("You wake at the district gates, %d gold lighter.", penalty),
		)
		return lines
	}

	lines = append(lines, fmt.Sprintf("HP: %d/%d.", p.HP, p.MaxHP))
	return lines
}
