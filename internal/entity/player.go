package entity

type Player struct {
	ID    string `json:"id"`
	Color Color  `json:"color"`
}
