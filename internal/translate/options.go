package translate

// Options control compatibility details where observed upstream
// revisions disagree.
type Options struct {
	// SplitUnaryPlus controls how an integer primitive with a leading
	// '+' in its text is emitted. When false (default) the sign folds
	// into a single integer token; when true a separate unary-plus
	// token precedes the bare integer.
	SplitUnaryPlus bool
}
