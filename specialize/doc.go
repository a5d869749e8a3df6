// Package specialize is the ahead-of-time specialization hook: a Specializer
// turns a shape-combination signature into one cached artifact, built once
// and reused for every later value batch of that shape. Memo is the default
// in-process implementation; embedders with their own specialization runtime
// supply their own Specializer instead.
package specialize
