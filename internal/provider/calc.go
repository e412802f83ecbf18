package provider

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/expr-lang/expr"
	"go.uber.org/zap"

	"github.com/nhath/centrum/internal/candidate"
	"github.com/nhath/centrum/internal/icons"
	"github.com/nhath/centrum/internal/runner"
)

// calcDebounce is the window in which a new query reuses the previous
// result instead of starting another evaluation.
const calcDebounce = 50 * time.Millisecond

const maxPlainLen = 100

// Evaluator computes arithmetic expressions
type Evaluator interface {
	// Eval returns the terse result of expression.
	Eval(ctx context.Context, expression string) (string, error)
	// Plain evaluates again with scientific notation disabled.
	Plain(ctx context.Context, expression string) (string, error)
}

// NewEvaluator prefers qalc and falls back to the built-in evaluator
func NewEvaluator(r runner.Runner) Evaluator {
	if r.LookPath("qalc") {
		return Qalc{Runner: r}
	}
	return ExprEvaluator{}
}

// Qalc evaluates with libqalculate's command line tool
type Qalc struct {
	Runner runner.Runner
}

func (q Qalc) Eval(ctx context.Context, expression string) (string, error) {
	out, err := q.Runner.Output(ctx, "qalc", "-t", expression)
	return strings.TrimSpace(string(out)), err
}

func (q Qalc) Plain(ctx context.Context, expression string) (string, error) {
	out, err := q.Runner.Output(ctx, "qalc", "-t", "-s", "scientific_notation off", expression)
	return strings.TrimSpace(string(out)), err
}

var errNotNumber = errors.New("expression does not evaluate to a number")

// percentRe matches a percentage literal such as "15%" that is not a modulo
// operator.
var percentRe = regexp.MustCompile(`(\d+(?:\.\d+)?)%(\D|$)`)

var exprEnv = map[string]any{
	"pi":    math.Pi,
	"e":     math.E,
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"ln":    math.Log,
	"log":   math.Log10,
	"log2":  math.Log2,
	"exp":   math.Exp,
	"pow":   math.Pow,
	"hypot": math.Hypot,
}

// ExprEvaluator evaluates plain arithmetic in-process. Unit conversion and
// the other qalc extensions are not available.
type ExprEvaluator struct{}

func (ExprEvaluator) Eval(_ context.Context, expression string) (string, error) {
	v, err := evalExpr(expression)
	if err != nil {
		return "", err
	}
	return formatNumber(v, false), nil
}

func (ExprEvaluator) Plain(_ context.Context, expression string) (string, error) {
	v, err := evalExpr(expression)
	if err != nil {
		return "", err
	}
	return formatNumber(v, true), nil
}

func evalExpr(expression string) (float64, error) {
	expression = percentRe.ReplaceAllString(expression, "($1/100)$2")
	program, err := expr.Compile(expression, expr.Env(exprEnv))
	if err != nil {
		return 0, err
	}
	out, err := expr.Run(program, exprEnv)
	if err != nil {
		return 0, err
	}
	var v float64
	switch n := out.(type) {
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case float64:
		v = n
	default:
		return 0, fmt.Errorf("%w: %T", errNotNumber, out)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotNumber
	}
	return v, nil
}

func formatNumber(v float64, plain bool) string {
	abs := math.Abs(v)
	if !plain && (abs >= 1e15 || (abs > 0 && abs < 1e-6)) {
		return strconv.FormatFloat(v, 'E', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Calculator turns arithmetic queries into a copyable result. While a user
// types, queries arriving within calcDebounce of the last evaluation reuse
// its result. The cache is guarded so one Calculator may be shared.
type Calculator struct {
	eval   Evaluator
	logger *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	last      time.Time
	lastQuery string
	result    *candidate.Candidate
}

// NewCalculator creates a Calculator backed by eval
func NewCalculator(eval Evaluator, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{eval: eval, logger: logger, now: time.Now}
}

// IsCalcQuery reports whether query may be an arithmetic expression
func IsCalcQuery(query string) bool {
	if strings.HasPrefix(query, "/") || strings.HasPrefix(query, ":") || strings.HasPrefix(query, "?") {
		return false
	}
	return len(query) >= 2 && strings.ContainsAny(query, "0123456789")
}

// Evaluate returns the calculator candidate for query, or nil
func (c *Calculator) Evaluate(ctx context.Context, query string) *candidate.Candidate {
	if !IsCalcQuery(query) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if query == c.lastQuery {
		return c.cached()
	}
	now := c.now()
	if now.Sub(c.last) < calcDebounce {
		return c.cached()
	}
	c.last = now
	c.lastQuery = query
	c.result = c.compute(ctx, query)
	return c.cached()
}

func (c *Calculator) cached() *candidate.Candidate {
	if c.result == nil {
		return nil
	}
	cp := *c.result
	return &cp
}

func (c *Calculator) compute(ctx context.Context, query string) *candidate.Candidate {
	expression := rewriteExpression(query)
	result, err := c.eval.Eval(ctx, expression)
	if err != nil {
		c.logger.Debug("calculator evaluation failed", zap.String("expression", expression), zap.Error(err))
		return nil
	}
	if result == "" || result == query || result == "0" || strings.Contains(result, "rem(") {
		return nil
	}

	display := strings.ReplaceAll(result, " + ", "\n")
	value := result
	if strings.Contains(result, "E") {
		plain, err := c.eval.Plain(ctx, expression)
		if err == nil && plain != "" && plain != result && len(plain) <= maxPlainLen {
			display = fmt.Sprintf("%s\n(%s)", display, plain)
			value = plain
		}
	}

	return &candidate.Candidate{
		Name:   display,
		Action: candidate.CopyAction(value),
		Icon:   icons.Calculator,
		Source: candidate.Calc,
	}
}

// rewriteExpression turns "20% of 80" style input into an expression
func rewriteExpression(query string) string {
	expression := strings.ReplaceAll(query, " of ", " * ")
	if strings.Contains(query, "%") && !strings.ContainsAny(expression, "*/+-") {
		expression = strings.Join(strings.Fields(expression), " * ")
	}
	return expression
}
