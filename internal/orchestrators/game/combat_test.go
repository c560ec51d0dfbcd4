package game_test

import (
	"github.com/cryptoconquerors/realm-api/internal/pkg/dice"
)

func (s *OrchestratorTestSuite) TestBossSpawnsAtExactlyFullProgress() {
	p := s.readyPlayer("walletA", "Alice")
	p.CurrentDistrict = "Novice Mines"
	p.DistrictProgress = 95
	s.seedPlayer(p, "hunter22")

	// The boss bypasses the encounter roll entirely; the scripted 100
	// would make any chance roll fail if one were consumed.
	svc := s.newService(dice.NewFixed(100))
	sess := s.login(svc, "walletA", "hunter22")

	out := s.exec(svc, sess, "run")
	text := joined(out)
	s.Contains(text, "Progress: 100%")
	s.Contains(text, "Foreman Gruk, ruler of Novice Mines, blocks your path!")

	name, hp, ok := sess.Battle()
	s.Require().True(ok)
	s.Equal("Foreman Gruk", name)
	s.Equal(120, hp)
	s.Equal(100, s.storedProfile("walletA").DistrictProgress)
}

func (s *OrchestratorTestSuite) TestRandomEncounter() {
	p := s.readyPlayer("walletA", "Alice")
	p.CurrentDistrict = "Novice Mines"
	p.DistrictProgress = 50
	s.seedPlayer(p, "hunter22")

	// run to 55%: encounter roll 30 <= 30 hits, enemy pick 2 -> Mine
	// Goblin. No checkpoint at 55.
	svc := s.newService(dice.NewFixed(30, 2))
	sess := s.login(svc, "walletA", "hunter22")

	out := s.exec(svc, sess, "run")
	s.Contains(joined(out), "A Mine Goblin lunges at you!")

	name, hp, ok := sess.Battle()
	s.Require().True(ok)
	s.Equal("Mine Goblin", name)
	s.Equal(40, hp)
}

func (s *OrchestratorTestSuite) TestAttackVictory() {
	p := s.readyPlayer("walletA", "Alice")
	p.CurrentDistrict = "Novice Mines"
	s.seedPlayer(p, "hunter22")

	// run to 5%: encounter hits (1), enemy pick 1 -> Cave Rat (30 HP,
	// 25 gold). attack: 10+11-1=20 damage, counter 1-1=0. attack again:
	// 20 damage kills; no counter after a kill.
	svc := s.newService(dice.NewFixed(1, 1, 11, 1, 11))
	sess := s.login(svc, "walletA", "hunter22")

	s.exec(svc, sess, "run")

	out := s.exec(svc, sess, "attack")
	text := joined(out)
	s.Contains(text, "You strike Cave Rat for 20 damage.")
	s.Contains(text, "Cave Rat has 10 HP left.")

	_, hp, ok := sess.Battle()
	s.Require().True(ok)
	s.Equal(10, hp)

	out = s.exec(svc, sess, "attack")
	text = joined(out)
	s.Contains(text, "Cave Rat falls!")
	s.Contains(text, "You loot 25 gold.")

	_, _, ok = sess.Battle()
	s.False(ok)

	stored := s.storedProfile("walletA")
	s.Equal(125, stored.Gold)
	s.Equal(200, stored.HP)
}

func (s *OrchestratorTestSuite) TestBossVictoryCompletesDistrict() {
	p := s.readyPlayer("walletA", "Alice")
	p.CurrentDistrict = "Novice Mines"
	p.DistrictProgress = 95
	s.seedPlayer(p, "hunter22")

	// Boss has 120 HP and 18 attack. Four rounds of 29 damage (10+20-1)
	// with zero counters (1-1=0), then a killing fifth blow.
	svc := s.newService(dice.NewFixed(20, 1, 20, 1, 20, 1, 20, 1, 20))
	sess := s.login(svc, "walletA", "hunter22")

	s.exec(svc, sess, "run")
	for i := 0; i < 4; i++ {
		s.exec(svc, sess, "attack")
	}
	out := s.exec(svc, sess, "attack")
	text := joined(out)
	s.Contains(text, "Foreman Gruk falls!")
	s.Contains(text, "You loot 120 gold.")
	s.Contains(text, "Level up! You are now level 2.")
	s.Contains(text, "Novice Mines is conquered!")

	stored := s.storedProfile("walletA")
	s.Equal(2, stored.Level)
	s.Equal([]string{"Novice Mines"}, stored.CompletedDistricts)
	s.Equal("", stored.CurrentDistrict)
	s.Equal(0, stored.DistrictProgress)
	s.Equal(220, stored.Gold)
}

func (s *OrchestratorTestSuite) TestNoDoubleLevelUp() {
	p := s.readyPlayer("walletA", "Alice")
	p.Level = 2
	p.CompletedDistricts = []string{"Novice Mines"}
	p.CurrentDistrict = "Novice Mines"
	p.DistrictProgress = 95
	s.seedPlayer(p, "hunter22")

	svc := s.newService(dice.NewFixed(20, 1, 20, 1, 20, 1, 20, 1, 20))
	sess := s.login(svc, "walletA", "hunter22")

	s.exec(svc, sess, "run")
	for i := 0; i < 4; i++ {
		s.exec(svc, sess, "attack")
	}
	out := s.exec(svc, sess, "attack")
	s.NotContains(joined(out), "Level up!")

	stored := s.storedProfile("walletA")
	s.Equal(2, stored.Level)
	s.Equal([]string{"Novice Mines"}, stored.CompletedDistricts)
}

func (s *OrchestratorTestSuite) TestDeathPenaltyOnFailedFlee() {
	p := s.readyPlayer("walletA", "Alice")
	p.Gold = 100
	p.HP = 5
	p.CurrentDistrict = "Novice Mines"
	p.DistrictProgress = 40
	s.seedPlayer(p, "hunter22")

	// run to 45%: encounter hits (1), enemy pick 1 -> Cave Rat (12
	// attack). flee: escape roll 100 fails, counter 0+11-1=10 drops HP
	// to -5.
	svc := s.newService(dice.NewFixed(1, 1, 100, 11))
	sess := s.login(svc, "walletA", "hunter22")

	s.exec(svc, sess, "run")
	out := s.exec(svc, sess, "flee")
	text := joined(out)
	s.Contains(text, "Cave Rat blocks your escape!")
	s.Contains(text, "You collapse...")
	s.Contains(text, "10 gold lighter")

	stored := s.storedProfile("walletA")
	s.Equal(90, stored.Gold)
	s.Equal(100, stored.HP)
	s.Equal(0, stored.DistrictProgress)

	_, _, ok := sess.Battle()
	s.False(ok)
}

func (s *OrchestratorTestSuite) TestFleeSuccess() {
	p := s.readyPlayer("walletA", "Alice")
	p.Gold = 100
	p.CurrentDistrict = "Novice Mines"
	p.DistrictProgress = 45
	s.seedPlayer(p, "hunter22")

	// run to 50%: encounter hits (1), enemy pick 1; the 50% checkpoint
	// also rolls an NPC (1) and an exploration spot (1). flee: 25 <= 25
	// succeeds.
	svc := s.newService(dice.NewFixed(1, 1, 1, 1, 25))
	sess := s.login(svc, "walletA", "hunter22")

	s.exec(svc, sess, "run")
	out := s.exec(svc, sess, "flee")
	text := joined(out)
	s.Contains(text, "You slip away from Cave Rat, dropping 5 gold in your haste.")
	s.Contains(text, "Progress falls to 40%.")

	stored := s.storedProfile("walletA")
	s.Equal(95, stored.Gold)
	s.Equal(40, stored.DistrictProgress)

	_, _, ok := sess.Battle()
	s.False(ok)
}

func (s *OrchestratorTestSuite) TestFleeFromBossCostsMoreProgress() {
	p := s.readyPlayer("walletA", "Alice")
	p.Gold = 200
	p.CurrentDistrict = "Novice Mines"
	p.DistrictProgress = 95
	s.seedPlayer(p, "hunter22")

	// Boss spawn consumes no rolls; flee 25 succeeds.
	svc := s.newService(dice.NewFixed(25))
	sess := s.login(svc, "walletA", "hunter22")

	s.exec(svc, sess, "run")
	out := s.exec(svc, sess, "flee")
	s.Contains(joined(out), "Progress falls to 75%.")

	stored := s.storedProfile("walletA")
	s.Equal(190, stored.Gold)
	s.Equal(75, stored.DistrictProgress)
}

func (s *OrchestratorTestSuite) TestAttackOutsideBattle() {
	s.seedPlayer(s.readyPlayer("walletA", "Alice"), "hunter22")
	svc := s.newService(dice.NewFixed(1))
	sess := s.login(svc, "walletA", "hunter22")

	out := s.exec(svc, sess, "attack")
	s.Contains(joined(out), "There's nothing to fight here.")

	out = s.exec(svc, sess, "flee")
	s.Contains(joined(out), "There's nothing to fight here.")
}

func (s *OrchestratorTestSuite) TestBattleBlocksOtherCommands() {
	p := s.readyPlayer("walletA", "Alice")
	p.CurrentDistrict = "Novice Mines"
	p.DistrictProgress = 95
	s.seedPlayer(p, "hunter22")

	svc := s.newService(dice.NewFixed(1))
	sess := s.login(svc, "walletA", "hunter22")
	s.exec(svc, sess, "run")

	out := s.exec(svc, sess, "start")
	s.Contains(joined(out), "Foreman Gruk is upon you!")

	name, _, ok := sess.Battle()
	s.Require().True(ok)
	s.Equal("Foreman Gruk", name)
}
