package types

// TradeType is free-form; "buy" and "sell" are the conventional values but any string is accepted.
type TradeType = string

var (
	TypeBuy  TradeType = "buy"
	TypeSell TradeType = "sell"
)
