package church

// Block is a branch body for the object form.
type Block func() any

// Boolean is the object-oriented counterpart of Selector: each value knows
// which block to run.
type Boolean interface {
	IfBlock(ifTrue, ifFalse Block) any

	Selector() Selector
}

var (
	TrueObject  Boolean = trueBoolean{}
	FalseObject Boolean = falseBoolean{}
)

type trueBoolean struct{}

func (trueBoolean) IfBlock(ifTrue, _ Block) any {
	if ifTrue == nil {
		return nil
	}
	return ifTrue()
}

func (trueBoolean) Selector() Selector { return True }

func (trueBoolean) String() string { return "true" }

type falseBoolean struct{}

func (falseBoolean) IfBlock(_, ifFalse Block) any {
	if ifFalse == nil {
		return nil
	}
	return ifFalse()
}

func (falseBoolean) Selector() Selector { return False }

func (falseBoolean) String() string { return "false" }

var truth = map[bool]Boolean{
	true:  TrueObject,
	false: FalseObject,
}

func Truth(b bool) Boolean {
	return truth[b]
}

func AsBoolean(s Selector) (Boolean, error) {
	return Choose(s, TrueObject, FalseObject)
}
