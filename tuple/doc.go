// Package tuple provides fixed-arity heterogeneous tuple types (T1..T5),
// their erased Sequence view, and the Shape values that specialization
// dispatches on.
//
// A tuple's arity and per-position types are fixed when the program is
// compiled; Sequence erases the types but not the arity. Group is the erased
// counterpart of the typed tuples and is what composed sequences hand out.
package tuple
