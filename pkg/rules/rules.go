// Package rules implements the rules library: a 29-rule correctness
// group, one style rule, two regex rules, and three additional rules
// supplemented from rslint_core: no-empty-character-class and
// no-regex-spaces (both in the "regex" group) and no-case-declarations
// (in the "correctness" group).
//
// Every rule is tree-local; none need cross-file whole-program dataflow.
package rules

import "github.com/aledsdavies/cstlint/pkg/rulengine"

// All returns every rule in the library, in the fixed registration order
// diagnostics are merged in.
func All() []rulengine.Rule {
	return []rulengine.Rule{
		&NoDebugger{},
		&NoEmpty{},
		&NoCondAssign{},
		&NoConstantCondition{},
		&NoDupeKeys{},
		&NoDuplicateCases{},
		&NoUnsafeNegation{},
		&NoCompareNegZero{},
		&NoExtraSemi{},
		&ValidTypeof{},
		&NoSelfAssign{},
		&ForDirection{},
		&NoUnexpectedMultiline{},
		&NoDuplicateImports{},
		&NoEmptyCharacterClass{},
		&NoCaseDeclarations{},
		&NoUnsafeFinally{},
		&GetterReturn{},
		&ConstructorSuper{},
		&NoThisBeforeSuper{},
		&NoAwaitInLoop{},
		&NoAsyncPromiseExecutor{},
		&NoInnerDeclarations{},
		&NoSparseArrays{},
		&NoPrototypeBuiltins{},
		&NoNewSymbol{},
		&RequireYield{},
		&NoSetterReturn{},
		&NoExtraBooleanCast{},
		&NoConfusingArrow{},
		&NoIrregularWhitespace{},
		&BlockSpacing{},
		&NoRegexSpaces{},
		&NoInvalidRegexp{},
		&SimplifyRegex{},
	}
}
