package domain

// RevealView is what a requesting participant may see of an answer exchange.
// It is derived from store state on every read and never persisted.
//
// Partner is non-nil only when Self is non-nil and the partner's answer
// exists: a participant who has not submitted learns nothing, not even
// whether the partner has answered.
type RevealView struct {
	Self    *Answer `json:"self,omitempty"`
	Partner *Answer `json:"partner,omitempty"`
}

// Reveal computes the view for one side of the exchange. self and partner
// are the stored answers for the requesting user and their partner, either
// of which may be nil.
func Reveal(self, partner *Answer) RevealView {
	if self == nil {
		return RevealView{}
	}
	return RevealView{Self: self, Partner: partner}
}
