package tuple

// T1 is a fixed-length heterogeneous tuple of one element.
type T1[V1 any] struct {
	V1 V1
}

func New1[V1 any](v1 V1) T1[V1] {
	return T1[V1]{V1: v1}
}

func (t T1[V1]) Len() int { return 1 }

func (t T1[V1]) At(i int) any {
	switch i {
	case 0:
		return t.V1
	default:
		panic(indexMessage(i, 1))
	}
}

// T2 is a fixed-length heterogeneous tuple of two elements.
type T2[V1, V2 any] struct {
	V1 V1
	V2 V2
}

func New2[V1, V2 any](v1 V1, v2 V2) T2[V1, V2] {
	return T2[V1, V2]{V1: v1, V2: v2}
}

func (t T2[V1, V2]) Len() int { return 2 }

func (t T2[V1, V2]) At(i int) any {
	switch i {
	case 0:
		return t.V1
	case 1:
		return t.V2
	default:
		panic(indexMessage(i, 2))
	}
}

// T3 is a fixed-length heterogeneous tuple of three elements.
type T3[V1, V2, V3 any] struct {
	V1 V1
	V2 V2
	V3 V3
}

func New3[V1, V2, V3 any](v1 V1, v2 V2, v3 V3) T3[V1, V2, V3] {
	return T3[V1, V2, V3]{V1: v1, V2: v2, V3: v3}
}

func (t T3[V1, V2, V3]) Len() int { return 3 }

func (t T3[V1, V2, V3]) At(i int) any {
	switch i {
	case 0:
		return t.V1
	case 1:
		return t.V2
	case 2:
		return t.V3
	default:
		panic(indexMessage(i, 3))
	}
}

// T4 is a fixed-length heterogeneous tuple of four elements.
type T4[V1, V2, V3, V4 any] struct {
	V1 V1
	V2 V2
	V3 V3
	V4 V4
}

func New4[V1, V2, V3, V4 any](v1 V1, v2 V2, v3 V3, v4 V4) T4[V1, V2, V3, V4] {
	return T4[V1, V2, V3, V4]{V1: v1, V2: v2, V3: v3, V4: v4}
}

func (t T4[V1, V2, V3, V4]) Len() int { return 4 }

func (t T4[V1, V2, V3, V4]) At(i int) any {
	switch i {
	case 0:
		return t.V1
	case 1:
		return t.V2
	case 2:
		return t.V3
	case 3:
		return t.V4
	default:
		panic(indexMessage(i, 4))
	}
}

// T5 is a fixed-length heterogeneous tuple of five elements.
type T5[V1, V2, V3, V4, V5 any] struct {
	V1 V1
	V2 V2
	V3 V3
	V4 V4
	V5 V5
}

func New5[V1, V2, V3, V4, V5 any](v1 V1, v2 V2, v3 V3, v4 V4, v5 V5) T5[V1, V2, V3, V4, V5] {
	return T5[V1, V2, V3, V4, V5]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5}
}

func (t T5[V1, V2, V3, V4, V5]) Len() int { return 5 }

func (t T5[V1, V2, V3, V4, V5]) At(i int) any {
	switch i {
	case 0:
		return t.V1
	case 1:
		return t.V2
	case 2:
		return t.V3
	case 3:
		return t.V4
	case 4:
		return t.V5
	default:
		panic(indexMessage(i, 5))
	}
}
