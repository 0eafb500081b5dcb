package model

// Session holds the data carried by the signed session token.
type Session struct {
	Code string
	Exp  float64
}
