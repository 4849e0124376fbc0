package options

type Order string

const (
	Ascend  Order = "ASC"
	Descend Order = "DESC"
)

// KeyRange bounds a listing to keys in [Lower, Upper], inclusive.
type KeyRange struct {
	Lower, Upper uint64
}

type ListOptions struct {
	O  Order
	KR *KeyRange
}

func (lo *ListOptions) SetOrder(o Order) *ListOptions {
	lo.O = o
	return lo
}

func (lo *ListOptions) Desc() *ListOptions {
	lo.O = Descend
	return lo
}

func (lo *ListOptions) KeyRange(lower, upper uint64) *ListOptions {
	lo.KR = &KeyRange{Lower: lower, Upper: upper}
	return lo
}

func List() *ListOptions {
	return &ListOptions{O: Ascend}
}
