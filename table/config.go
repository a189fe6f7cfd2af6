package table

// Stakes are the forced bet amounts for the table.
type Stakes struct {

	// SmallBet is the small blind amount.
	SmallBet int `json:"smallBet" bson:"smallBet"`

	// BigBet is the big blind amount.
	BigBet int `json:"bigBet" bson:"bigBet"`
}

// Config are the configurations for creating a table.
type Config struct {

	// Stakes is the stakes for the table.
	Stakes Stakes `json:"stakes" bson:"stakes"`

	// BuyIn is the number of chips each player starts with.
	BuyIn int `json:"buyIn" bson:"buyIn"`
}

// NewConfig forms a configuration from a buy in and a big blind.  The small
// blind is half the big blind, as is conventional.
func NewConfig(buyIn, bigBlind int) Config {
	return Config{
		Stakes: Stakes{SmallBet: bigBlind / 2, BigBet: bigBlind},
		BuyIn:  buyIn,
	}
}
