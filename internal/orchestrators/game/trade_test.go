package game_test

import (
	"github.com/cryptoconquerors/realm-api/internal/pkg/dice"
	"github.com/cryptoconquerors/realm-api/internal/repositories/profile"
	"github.com/cryptoconquerors/realm-api/internal/repositories/trade"
)

// seedTraders stores Alice (rich, holding an Iron Sword) and Bob.
func (s *OrchestratorTestSuite) seedTraders() {
	alice := s.readyPlayer("walletA", "Alice")
	alice.Gold = 1000
	alice.Inventory = []string{"Iron Sword"}
	s.seedPlayer(alice, "hunter22")

	bob := s.readyPlayer("walletB", "Bob")
	bob.Gold = 50
	bob.Inventory = nil
	s.seedPlayer(bob, "hunter22")
}

func (s *OrchestratorTestSuite) TestOfferAndAccept() {
	s.seedTraders()
	svc := s.newService(dice.NewFixed(1))

	alice := s.login(svc, "walletA", "hunter22")
	s.exec(svc, alice, "trade")
	s.exec(svc, alice, "3")
	s.exec(svc, alice, "search walletB")
	out := s.exec(svc, alice, "offer 1 200")
	s.Contains(joined(out), "Offer sent to Bob: Iron Sword + 200 gold.")

	bob := s.login(svc, "walletB", "hunter22")
	out = s.exec(svc, bob, "trades")
	s.Contains(joined(out), "1. from walletA: Iron Sword + 200 gold")

	out = s.exec(svc, bob, "accept 1")
	s.Contains(joined(out), "Trade complete! You receive Iron Sword + 200 gold from Alice.")

	storedAlice := s.storedProfile("walletA")
	s.Equal(800, storedAlice.Gold)
	s.Empty(storedAlice.Inventory)

	storedBob := s.storedProfile("walletB")
	s.Equal(250, storedBob.Gold)
	s.Equal([]string{"Iron Sword"}, storedBob.Inventory)

	// The session profile is refreshed from the store.
	s.Equal(250, bob.Profile().Gold)

	listed, err := s.tradeRepo.ListPending(s.ctx, trade.ListPendingInput{Wallet: "walletB"})
	s.Require().NoError(err)
	s.Empty(listed.Offers)
}

func (s *OrchestratorTestSuite) TestAcceptTwiceFailsCleanly() {
	s.seedTraders()
	svc := s.newService(dice.NewFixed(1))

	alice := s.login(svc, "walletA", "hunter22")
	s.exec(svc, alice, "trade")
	s.exec(svc, alice, "3")
	s.exec(svc, alice, "search walletB")
	s.exec(svc, alice, "offer 1 200")

	bob := s.login(svc, "walletB", "hunter22")
	s.exec(svc, bob, "trades")
	s.exec(svc, bob, "accept 1")

	out := s.exec(svc, bob, "accept 1")
	s.Contains(joined(out), "already resolved")

	// No second mutation.
	s.Equal(800, s.storedProfile("walletA").Gold)
	s.Equal(250, s.storedProfile("walletB").Gold)
	s.Equal(1, len(s.storedProfile("walletB").Inventory))
}

func (s *OrchestratorTestSuite) TestAcceptFailsWhenItemGone() {
	s.seedTraders()
	svc := s.newService(dice.NewFixed(1))

	alice := s.login(svc, "walletA", "hunter22")
	s.exec(svc, alice, "trade")
	s.exec(svc, alice, "3")
	s.exec(svc, alice, "search walletB")
	s.exec(svc, alice, "offer 1 200")

	// Alice offloads the sword before Bob accepts.
	stored := s.storedProfile("walletA")
	stored.Inventory = nil
	_, err := s.profileRepo.Save(s.ctx, profile.SaveInput{Profile: stored})
	s.Require().NoError(err)

	bob := s.login(svc, "walletB", "hunter22")
	s.exec(svc, bob, "trades")
	out := s.exec(svc, bob, "accept 1")
	s.Contains(joined(out), "Alice no longer has the Iron Sword.")

	s.Equal(1000, s.storedProfile("walletA").Gold)
	s.Equal(50, s.storedProfile("walletB").Gold)
}

func (s *OrchestratorTestSuite) TestAcceptFailsWhenGoldGone() {
	s.seedTraders()
	svc := s.newService(dice.NewFixed(1))

	alice := s.login(svc, "walletA", "hunter22")
	s.exec(svc, alice, "trade")
	s.exec(svc, alice, "3")
	s.exec(svc, alice, "search walletB")
	s.exec(svc, alice, "offer 1 200")

	stored := s.storedProfile("walletA")
	stored.Gold = 100
	_, err := s.profileRepo.Save(s.ctx, profile.SaveInput{Profile: stored})
	s.Require().NoError(err)

	bob := s.login(svc, "walletB", "hunter22")
	s.exec(svc, bob, "trades")
	out := s.exec(svc, bob, "accept 1")
	s.Contains(joined(out), "Alice can no longer cover the 200 gold.")

	s.Equal("Iron Sword", s.storedProfile("walletA").Inventory[0])
	s.Equal(50, s.storedProfile("walletB").Gold)
}

func (s *OrchestratorTestSuite) TestSenderCannotAcceptOwnOffer() {
	s.seedTraders()
	svc := s.newService(dice.NewFixed(1))

	alice := s.login(svc, "walletA", "hunter22")
	s.exec(svc, alice, "trade")
	s.exec(svc, alice, "3")
	s.exec(svc, alice, "search walletB")
	s.exec(svc, alice, "offer 1 200")

	s.exec(svc, alice, "trades")
	out := s.exec(svc, alice, "accept 1")
	s.Contains(joined(out), "only accept trades sent to you")
}

func (s *OrchestratorTestSuite) TestDecline() {
	s.seedTraders()
	svc := s.newService(dice.NewFixed(1))

	alice := s.login(svc, "walletA", "hunter22")
	s.exec(svc, alice, "trade")
	s.exec(svc, alice, "3")
	s.exec(svc, alice, "search walletB")
	s.exec(svc, alice, "offer 1 200")

	bob := s.login(svc, "walletB", "hunter22")
	s.exec(svc, bob, "trades")
	out := s.exec(svc, bob, "decline 1")
	s.Contains(joined(out), "Trade declined.")

	out = s.exec(svc, bob, "accept 1")
	s.Contains(joined(out), "already resolved")

	s.Equal(1000, s.storedProfile("walletA").Gold)
	s.Equal(50, s.storedProfile("walletB").Gold)
}

func (s *OrchestratorTestSuite) TestOfferValidation() {
	s.seedTraders()
	svc := s.newService(dice.NewFixed(1))

	alice := s.login(svc, "walletA", "hunter22")
	s.exec(svc, alice, "trade")
	s.exec(svc, alice, "3")
	s.exec(svc, alice, "search walletB")

	out := s.exec(svc, alice, "offer 5 0")
	s.Contains(joined(out), "don't have an item number 5")

	out = s.exec(svc, alice, "offer 0 99999")
	s.Contains(joined(out), "You only have 1000 gold.")

	out = s.exec(svc, alice, "offer 0 0")
	s.Contains(joined(out), "Offer something")
}

func (s *OrchestratorTestSuite) TestGoldOnlyOffer() {
	s.seedTraders()
	svc := s.newService(dice.NewFixed(1))

	alice := s.login(svc, "walletA", "hunter22")
	s.exec(svc, alice, "trade")
	s.exec(svc, alice, "3")
	s.exec(svc, alice, "search walletB")
	out := s.exec(svc, alice, "offer 0 300")
	s.Contains(joined(out), "Offer sent to Bob: 300 gold.")

	bob := s.login(svc, "walletB", "hunter22")
	s.exec(svc, bob, "trades")
	s.exec(svc, bob, "accept 1")

	s.Equal(700, s.storedProfile("walletA").Gold)
	s.Equal(350, s.storedProfile("walletB").Gold)
	s.Empty(s.storedProfile("walletB").Inventory)
}

func (s *OrchestratorTestSuite) TestBrowseAndSelect() {
	s.seedTraders()
	svc := s.newService(dice.NewFixed(1))

	alice := s.login(svc, "walletA", "hunter22")
	s.exec(svc, alice, "trade")
	out := s.exec(svc, alice, "2")
	s.Contains(joined(out), "1. Bob (level 1)")

	out = s.exec(svc, alice, "select 1")
	s.Contains(joined(out), "Trading with Bob (walletB).")
}

func (s *OrchestratorTestSuite) TestSearchPlayerByName() {
	s.seedTraders()
	svc := s.newService(dice.NewFixed(1))

	alice := s.login(svc, "walletA", "hunter22")
	s.exec(svc, alice, "trade")
	s.exec(svc, alice, "3")

	out := s.exec(svc, alice, "search_player bo")
	s.Contains(joined(out), "1. Bob (level 1)")

	out = s.exec(svc, alice, "select 1")
	s.Contains(joined(out), "Trading with Bob (walletB).")
}

func (s *OrchestratorTestSuite) TestSearchUnknownWallet() {
	s.seedTraders()
	svc := s.newService(dice.NewFixed(1))

	alice := s.login(svc, "walletA", "hunter22")
	s.exec(svc, alice, "trade")
	s.exec(svc, alice, "3")

	out := s.exec(svc, alice, "search walletZ")
	s.Contains(joined(out), "No conqueror at that address.")
}

func (s *OrchestratorTestSuite) TestAcceptWithoutListing() {
	s.seedTraders()
	svc := s.newService(dice.NewFixed(1))

	bob := s.login(svc, "walletB", "hunter22")
	out := s.exec(svc, bob, "accept 1")
	s.Contains(joined(out), "Use 'trades' to list them first.")
}
