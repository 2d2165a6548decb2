package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"

	"github.com/lixenwraith/vector/persistence"
	"github.com/lixenwraith/vector/vector"
)

// errQuit signals the UI loop to exit
var errQuit = errors.New("quit")

// Session owns the current vector and interprets command lines against it
// Tokens become dynamic values: float64 when they parse as a number, string otherwise
type Session struct {
	current *vector.Vector
	kinds   map[string]vector.Kind
	store   *persistence.Manager
	degrees bool
}

// NewSession creates a session from config; kind names in cfg are declared up front
func NewSession(cfg SandboxConfig, store *persistence.Manager) (*Session, error) {
	s := &Session{
		kinds:   map[string]vector.Kind{vector.Base.Name(): vector.Base},
		store:   store,
		degrees: cfg.Degrees,
	}
	for _, name := range cfg.Kinds {
		s.kind(name)
	}

	v, err := vector.NewOf(s.kind(cfg.Kind), cfg.Initial)
	if err != nil {
		return nil, err
	}
	s.current = v
	return s, nil
}

// Current returns the vector being edited
func (s *Session) Current() *vector.Vector {
	return s.current
}

// kind returns the declared kind for name, declaring it on first use
func (s *Session) kind(name string) vector.Kind {
	if name == "" {
		return vector.Base
	}
	if k, ok := s.kinds[name]; ok {
		return k
	}
	k := vector.NewKind(name)
	s.kinds[name] = k
	return k
}

func (s *Session) kindList() []vector.Kind {
	out := make([]vector.Kind, 0, len(s.kinds))
	for _, k := range s.kinds {
		out = append(out, k)
	}
	return out
}

// Exec runs one command line and returns the text to show
func (s *Session) Exec(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "q", "quit", "exit":
		return "", errQuit

	case "help", "?":
		return helpText, nil

	case "show":
		return s.current.String(), nil

	case "repr":
		return s.current.GoString(), nil

	case "new":
		v, err := vector.NewOf(s.current.Kind(), values(args))
		if err != nil {
			return "", err
		}
		s.current = v
		return v.String(), nil

	case "cart":
		if len(args) == 0 {
			return formatTriple(s.current.Cart()), nil
		}
		if err := s.current.SetCart(values(args)); err != nil {
			return "", err
		}
		return s.current.String(), nil

	case "sph":
		if len(args) == 0 {
			return s.formatSph(), nil
		}
		if err := s.current.SetSph(values(args)); err != nil {
			return "", err
		}
		return s.current.String(), nil

	case "x", "y", "z", "r", "lat", "lon":
		if len(args) == 0 {
			f, err := s.current.Get(cmd)
			if err != nil {
				return "", err
			}
			return strconv.FormatFloat(f, 'g', -1, 64), nil
		}
		if err := s.current.Set(cmd, value(strings.Join(args, " "))); err != nil {
			return "", err
		}
		return s.current.String(), nil

	case "+", "-", "*", "-=":
		op := map[string]vector.Op{"+": vector.OpAdd, "-": vector.OpSub, "*": vector.OpMul, "-=": vector.OpSubAssign}[cmd]
		right, err := operand(s.current.Kind(), args)
		if err != nil {
			return "", err
		}
		v, err := vector.Apply(op, s.current, right)
		if err != nil {
			return "", err
		}
		s.current = v
		return v.String(), nil

	case "dot":
		right, err := operand(s.current.Kind(), args)
		if err != nil {
			return "", err
		}
		d, err := vector.DotOf(s.current, right)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(d, 'g', -1, 64), nil

	case "angle":
		other, err := vector.New(values(args))
		if err != nil {
			return "", err
		}
		return s.formatAngle(s.current.Angle(other)), nil

	case "neg":
		s.current = s.current.Neg()
		return s.current.String(), nil

	case "abs":
		return strconv.FormatFloat(s.current.Abs(), 'g', -1, 64), nil

	case "kind":
		if len(args) == 0 {
			return s.current.Kind().Name(), nil
		}
		s.current = vector.OfKind(s.kind(args[0]), s.current.X(), s.current.Y(), s.current.Z())
		return s.current.GoString(), nil

	case "deg":
		s.degrees = !s.degrees
		if s.degrees {
			return "angles in degrees", nil
		}
		return "angles in radians", nil

	case "save", "load", "rm", "ls":
		return s.execStore(cmd, args)
	}

	return "", fmt.Errorf("unknown command %q (try help)", cmd)
}

func (s *Session) execStore(cmd string, args []string) (string, error) {
	if s.store == nil {
		return "", errors.New("no snapshot store configured")
	}
	if cmd == "ls" {
		names, err := s.store.List()
		if err != nil {
			return "", err
		}
		if len(names) == 0 {
			return "(no snapshots)", nil
		}
		return strings.Join(names, " "), nil
	}
	if len(args) != 1 {
		return "", fmt.Errorf("%s takes one snapshot name", cmd)
	}

	name := args[0]
	switch cmd {
	case "save":
		if err := s.store.Save(name, s.current); err != nil {
			return "", err
		}
		return "saved " + name, nil
	case "load":
		v, err := s.store.Load(name, s.kindList()...)
		if err != nil {
			return "", err
		}
		s.current = v
		return v.GoString(), nil
	default:
		if err := s.store.Remove(name); err != nil {
			return "", err
		}
		return "removed " + name, nil
	}
}

// operand turns arguments into the right-hand side of a binary command
// One token is passed through as a dynamic scalar; anything else goes through the constructor
func operand(k vector.Kind, args []string) (any, error) {
	if len(args) == 1 {
		return value(args[0]), nil
	}
	return vector.NewOf(k, values(args))
}

func value(tok string) any {
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f
	}
	return tok
}

func values(toks []string) []any {
	out := make([]any, len(toks))
	for i, t := range toks {
		out[i] = value(t)
	}
	return out
}

func formatTriple(t [3]float64) string {
	return fmt.Sprintf("(%g, %g, %g)", t[0], t[1], t[2])
}

func (s *Session) formatSph() string {
	sph := s.current.Sph()
	if s.degrees {
		return fmt.Sprintf("r=%g lat=%s lon=%s", sph[0],
			s.formatAngle(s1.Angle(sph[1])), s.formatAngle(s1.Angle(sph[2])))
	}
	return fmt.Sprintf("r=%g lat=%g lon=%g", sph[0], sph[1], sph[2])
}

func (s *Session) formatAngle(a s1.Angle) string {
	if s.degrees {
		return fmt.Sprintf("%.6f°", a.Degrees())
	}
	return strconv.FormatFloat(a.Radians(), 'g', -1, 64)
}

const helpText = `new a b c | cart [a b c] | sph [r lat lon] | x y z r lat lon [v]
+ - -= * <vector|scalar> | dot <vector> | angle a b c | neg | abs
kind [name] | deg | show | repr | save/load/rm <name> | ls | q`
