package lists

func CreateEmptyList() List {
	return New()
}

func CreateNonEmptyList() List {
	l := From(3, New())
	l.Prepend(2)
	l.Prepend(1)
	l.Prepend(0)
	return l
}
