package interpreter

import (
	"math"

	"github.com/aledsdavies/lindenmaker/core/errors"
	"github.com/aledsdavies/lindenmaker/core/types"
	"github.com/aledsdavies/lindenmaker/core/vecmath"
)

// maxMaterialIndex bounds material indices taken from arguments
const maxMaterialIndex = math.MaxInt32

// dispatch executes one command against the run state
func (r *run) dispatch(cmd types.Command) error {
	if cmd.Malformed {
		return errors.NewMalformedArgumentsError(cmd.Text).At(cmd.Symbol, cmd.Offset)
	}

	form, known := commandTable[cmd.Symbol]
	if !known {
		r.skipped++
		r.log.Debug("skip", "command", cmd.String(), "offset", cmd.Offset)
		r.recordDebugEvent("skip", cmd.Offset, cmd.String())
		return nil
	}
	if cmd.Symbol == '?' {
		// queries are numbered before their arguments are checked
		r.queries++
	}
	if err := checkArity(cmd, form); err != nil {
		return err
	}

	r.commands++
	if r.counts != nil {
		r.counts[cmd.Symbol]++
	}
	r.log.Debug("dispatch", "command", cmd.String(), "offset", cmd.Offset)
	r.recordDebugEvent("dispatch", cmd.Offset, cmd.String())

	d := r.config.defaults
	switch cmd.Symbol {
	case 'F':
		length, err := numArg(cmd, 0, d.Length)
		if err != nil {
			return err
		}
		width, err := numArg(cmd, 1, r.state.LineWidth)
		if err != nil {
			return err
		}
		moved := r.state
		if err := moved.Move(length); err != nil {
			return errors.Attach(err, cmd.Symbol, cmd.Offset)
		}
		if !r.config.dryRun {
			if _, err := r.renderer.DrawInternode(r.state, length, width); err != nil {
				return errors.NewRendererError(cmd.Symbol, "", err).At(cmd.Symbol, cmd.Offset)
			}
		}
		r.state = moved

	case 'f':
		length, err := numArg(cmd, 0, d.Length)
		if err != nil {
			return err
		}
		if err := r.state.Move(length); err != nil {
			return errors.Attach(err, cmd.Symbol, cmd.Offset)
		}

	case '[':
		if r.config.drawNodes && !r.config.dryRun {
			if _, err := r.renderer.DrawNode(r.state, r.state.LineWidth); err != nil {
				return errors.NewRendererError(cmd.Symbol, "", err).At(cmd.Symbol, cmd.Offset)
			}
		}
		r.stack.Push(r.state)

	case ']':
		restored, err := r.stack.Pop()
		if err != nil {
			return errors.Attach(err, cmd.Symbol, cmd.Offset)
		}
		r.state = restored

	case '+', '-':
		angle, err := numArg(cmd, 0, d.Angle)
		if err != nil {
			return err
		}
		if cmd.Symbol == '-' {
			angle = -angle
		}
		r.state.Turn(angle)

	case '&', '^':
		angle, err := numArg(cmd, 0, d.Angle)
		if err != nil {
			return err
		}
		if cmd.Symbol == '&' {
			angle = -angle
		}
		r.state.Pitch(angle)

	case '\\', '/':
		angle, err := numArg(cmd, 0, d.Angle)
		if err != nil {
			return err
		}
		if cmd.Symbol == '\\' {
			angle = -angle
		}
		r.state.Roll(angle)

	case '|':
		r.state.Turn(180)

	case '_', '!':
		if len(cmd.Args) == 1 {
			width, err := numArg(cmd, 0, 0)
			if err != nil {
				return err
			}
			r.state.SetLineWidth(width)
			break
		}
		factor := d.Growth
		if cmd.Symbol == '!' {
			factor = 1 - (d.Growth - 1)
		}
		r.state.ScaleLineWidth(factor)

	case ';', ',':
		if len(cmd.Args) == 1 {
			index, err := numArg(cmd, 0, 0)
			if err != nil {
				return err
			}
			r.state.SetMaterialIndex(int(math.Max(math.Min(math.Trunc(index), maxMaterialIndex), -1)))
			break
		}
		if cmd.Symbol == ';' {
			r.state.SetMaterialIndex(min(r.state.MaterialIndex+1, maxMaterialIndex))
		} else {
			r.state.SetMaterialIndex(r.state.MaterialIndex - 1)
		}

	case '~':
		return r.drawCustomObject(cmd)

	case '@':
		target, err := vecArg(cmd, 0)
		if err != nil {
			return err
		}
		if err := r.state.LookAt(target); err != nil {
			return errors.Attach(err, cmd.Symbol, cmd.Offset)
		}

	case '?':
		return r.answerQuery(cmd)

	default:
		// every symbol in commandTable has an arm above
		panic("unhandled command symbol " + string(cmd.Symbol))
	}
	return nil
}

func (r *run) drawCustomObject(cmd types.Command) error {
	if cmd.Args[0].IsNumber() {
		return errors.NewArgumentTypeError(cmd.Symbol, 0, "object name", cmd.Args[0].String()).At(cmd.Symbol, cmd.Offset)
	}
	name := cmd.Args[0].Str

	scale := vecmath.Vec3{X: 1, Y: 1, Z: 1}
	switch len(cmd.Args) {
	case 2:
		s, err := numArg(cmd, 1, 1)
		if err != nil {
			return err
		}
		scale = vecmath.Vec3{X: s, Y: s, Z: s}
	case 4:
		v, err := vecArg(cmd, 1)
		if err != nil {
			return err
		}
		scale = v
	}

	if r.config.dryRun {
		return nil
	}
	if _, err := r.renderer.DrawCustomObject(r.state, name, scale); err != nil {
		return errors.NewRendererError(cmd.Symbol, name, err).At(cmd.Symbol, cmd.Offset)
	}
	return nil
}

func (r *run) answerQuery(cmd types.Command) error {
	n := r.queries - 1
	tag := cmd.Args[0].String()

	var v vecmath.Vec3
	ok := len(tag) == 1 && !cmd.Args[0].IsNumber()
	if ok {
		v, ok = r.state.Frame.Axis(tag[0])
	}
	if !ok {
		if !r.config.legacyQueryAxis {
			return errors.NewInvalidQueryAxisError(tag).At(cmd.Symbol, cmd.Offset)
		}
		v = r.state.Frame.Heading
	}

	r.recordDebugEvent("query", cmd.Offset, tag)
	if r.rewriter == nil {
		return nil
	}
	if err := r.rewriter.Rewrite(n, tag, v); err != nil {
		return errors.Attach(err, cmd.Symbol, cmd.Offset)
	}
	r.log.Debug("query", "n", n, "axis", tag, "value", v.String())
	return nil
}

// numArg returns argument i as a finite number, or def when the command has
// fewer arguments
func numArg(cmd types.Command, i int, def float64) (float64, error) {
	if i >= len(cmd.Args) {
		return def, nil
	}
	a := cmd.Args[i]
	if !a.IsNumber() || math.IsNaN(a.Num) || math.IsInf(a.Num, 0) {
		return 0, errors.NewArgumentTypeError(cmd.Symbol, i, "finite number", a.String()).At(cmd.Symbol, cmd.Offset)
	}
	return a.Num, nil
}

// vecArg reads three numeric arguments starting at i
func vecArg(cmd types.Command, i int) (vecmath.Vec3, error) {
	var c [3]float64
	for k := range c {
		v, err := numArg(cmd, i+k, 0)
		if err != nil {
			return vecmath.Vec3{}, err
		}
		c[k] = v
	}
	return vecmath.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}
