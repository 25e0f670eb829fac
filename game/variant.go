package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidVariant = errors.New("invalid variant")

// Variant parameterizes the board size and the run length needed to win.
type Variant struct {
	Name string
	Rows int
	Cols int
	K    int
}

var (
	Connect4 = Variant{Name: "connect4", Rows: 6, Cols: 7, K: 4}
	Connect6 = Variant{Name: "connect6", Rows: 8, Cols: 10, K: 6}
)

func LookupVariant(name string) (Variant, error) {
	switch strings.ToLower(name) {
	case Connect4.Name, "4":
		return Connect4, nil
	case Connect6.Name, "6":
		return Connect6, nil
	}
	return Variant{}, fmt.Errorf("%w: unknown variant %q", ErrInvalidVariant, name)
}

func (v Variant) Validate() error {
	if v.Rows <= 0 || v.Cols <= 0 {
		return fmt.Errorf("%w: board must have positive dimensions, got %dx%d", ErrInvalidVariant, v.Rows, v.Cols)
	}
	if v.K <= 0 || (v.K > v.Rows && v.K > v.Cols) {
		return fmt.Errorf("%w: run length %d does not fit a %dx%d board", ErrInvalidVariant, v.K, v.Rows, v.Cols)
	}
	return nil
}

func (v Variant) NewBoard() (*Board, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return NewBoard(v.Rows, v.Cols, v.K), nil
}

func (v Variant) String() string {
	if v.Name != "" {
		return v.Name
	}
	return fmt.Sprintf("%dx%d/k=%d", v.Rows, v.Cols, v.K)
}
