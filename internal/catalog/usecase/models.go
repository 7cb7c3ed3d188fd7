package usecase

type CreateInput struct {
	Name   string
	Price  int64
	Locked bool
}
