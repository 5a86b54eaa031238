package data_structure

type IntSet map[int]struct{}

func NewIntSet() IntSet {
	return make(IntSet)
}

func (s IntSet) Has(val int) bool {
	_, ok := s[val]
	return ok
}

func (s IntSet) Add(val int) {
	s[val] = struct{}{}
}

func (s IntSet) Remove(val int) {
	delete(s, val)
}
