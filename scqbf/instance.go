package scqbf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/tabusearch/matrix"
)

// Instance is a parsed SCQBF instance.
//
// Text format, whitespace separated:
//
//	n
//	|S_0| |S_1| ... |S_{n-1}|
//	elements of S_0 (1-based) ... elements of S_{n-1}
//	a_00 a_01 ... a_0(n-1)
//	     a_11 ... a_1(n-1)
//	...
//	               a_(n-1)(n-1)
//
// Sets holds 0-based universe indices.
type Instance struct {
	N    int
	Sets [][]int
	A    *matrix.Dense
}

// Load reads an instance file. A missing file yields an error matching
// both ErrNotFound and fs.ErrNotExist.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}

		return nil, fmt.Errorf("scqbf: open instance: %w", err)
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Parse reads an instance from r. Malformed input yields a *FormatError
// pointing at the first offending token.
func Parse(r io.Reader) (*Instance, error) {
	p := &parser{sc: bufio.NewScanner(r)}
	p.sc.Split(bufio.ScanWords)

	n, err := p.int("n")
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, p.fail("n", errOutOfRange)
	}

	sizes := make([]int, n)
	for i := range sizes {
		field := fmt.Sprintf("size of set %d", i)
		if sizes[i], err = p.int(field); err != nil {
			return nil, err
		}
		if sizes[i] < 0 || sizes[i] > n {
			return nil, p.fail(field, errOutOfRange)
		}
	}

	inst := &Instance{N: n, Sets: make([][]int, n)}
	for i, size := range sizes {
		inst.Sets[i] = make([]int, size)
		for k := 0; k < size; k++ {
			field := fmt.Sprintf("set %d element %d", i, k+1)
			u, err := p.int(field)
			if err != nil {
				return nil, err
			}
			if u < 1 || u > n {
				return nil, p.fail(field, errOutOfRange)
			}
			inst.Sets[i][k] = u - 1
		}
	}

	values := make([]float64, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, err := p.float(fmt.Sprintf("a[%d][%d]", i, j))
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	if inst.A, err = matrix.NewSquare(n); err != nil {
		return nil, fmt.Errorf("scqbf: %w", err)
	}
	if err = matrix.FillUpper(inst.A, values); err != nil {
		return nil, fmt.Errorf("scqbf: %w", err)
	}

	if p.next() {
		return nil, p.fail("end of input", errTrailing)
	}
	if err = p.sc.Err(); err != nil {
		return nil, fmt.Errorf("scqbf: read instance: %w", err)
	}

	return inst, nil
}

// parser walks the token stream and remembers the current token for errors.
type parser struct {
	sc  *bufio.Scanner
	pos int    // 1-based index of tok
	tok string // current token, "" at end of input
}

func (p *parser) next() bool {
	p.pos++
	if !p.sc.Scan() {
		p.tok = ""
		return false
	}
	p.tok = p.sc.Text()

	return true
}

func (p *parser) fail(field string, err error) *FormatError {
	return &FormatError{Token: p.pos, Field: field, Value: p.tok, Err: err}
}

// eof reports a premature end, or the scanner's I/O error if there was one.
func (p *parser) eof(field string) error {
	if err := p.sc.Err(); err != nil {
		return fmt.Errorf("scqbf: read instance: %w", err)
	}

	return p.fail(field, io.ErrUnexpectedEOF)
}

// int accepts "7" and integral floats such as "7.0".
func (p *parser) int(field string) (int, error) {
	if !p.next() {
		return 0, p.eof(field)
	}
	if v, err := strconv.Atoi(p.tok); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(p.tok, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, p.fail(field, errNotInteger)
	}

	return int(f), nil
}

func (p *parser) float(field string) (float64, error) {
	if !p.next() {
		return 0, p.eof(field)
	}
	v, err := strconv.ParseFloat(p.tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, p.fail(field, errNotNumber)
	}

	return v, nil
}
