package value

// String satisfies fmt.Stringer for every concrete Value kind by
// delegating to the shared Sprint renderer, so %v/%s formatting and
// Sprint agree everywhere.

func (n Num) String() string   { return Sprint(n) }
func (s Sym) String() string   { return Sprint(s) }
func (s Str) String() string   { return Sprint(s) }
func (e Err) String() string   { return Sprint(e) }
func (x SExpr) String() string { return Sprint(x) }
func (x QExpr) String() string { return Sprint(x) }
func (f Fun) String() string   { return Sprint(f) }
