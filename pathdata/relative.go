package pathdata

// ToRelative converts every absolute command of d to relative form,
// tracking the current point and the start of the current subpath. The
// leading move-to is kept as is. With decimals ≥ 0, values are rounded
// before and after the conversion so that repeated subtraction does not
// accumulate floating point noise.
//
// d is not modified.
func ToRelative(d Data, decimals int) (Data, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	out := d.Clone()
	first := &out[0]
	roundValues(first.Values, decimals)
	x, y := first.Values[0], first.Values[1]
	mx, my := x, y
	for i := 1; i < len(out); i++ {
		c := &out[i]
		v := roundValues(c.Values, decimals)
		if !c.Relative {
			c.Relative = true
			switch c.Kind {
			case ArcTo:
				v[5] -= x
				v[6] -= y
			case VerticalTo:
				v[0] -= y
			default:
				if c.Kind == MoveTo {
					mx, my = v[0], v[1]
				}
				for j := range v {
					if j%2 == 1 {
						v[j] -= y
					} else {
						v[j] -= x
					}
				}
			}
		} else if c.Kind == MoveTo {
			mx, my = v[0]+x, v[1]+y
		}
		switch n := len(v); c.Kind {
		case ClosePath:
			x, y = mx, my
		case HorizontalTo:
			x += v[0]
		case VerticalTo:
			y += v[0]
		default:
			x += v[n-2]
			y += v[n-1]
		}
		roundValues(v, decimals)
	}
	tracer().Debugf("converted %d commands to relative", len(out))
	return out, nil
}

// ToAbsolute converts every relative command of d to absolute form. It is
// the inverse of ToRelative: relative offsets are added back onto the
// tracked current point. A relative leading move-to is interpreted relative
// to the origin. With decimals ≥ 0, values are rounded before and after the
// conversion.
//
// d is not modified.
func ToAbsolute(d Data, decimals int) (Data, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	out := d.Clone()
	var cur cursor
	for i := range out {
		c := &out[i]
		v := roundValues(c.Values, decimals)
		if c.Relative {
			c.Relative = false
			x, y := cur.pos.F()
			switch c.Kind {
			case ArcTo:
				v[5] += x
				v[6] += y
			case HorizontalTo:
				v[0] += x
			case VerticalTo:
				v[0] += y
			default:
				for j := range v {
					if j%2 == 1 {
						v[j] += y
					} else {
						v[j] += x
					}
				}
			}
		}
		cur.advance(*c)
		roundValues(v, decimals)
	}
	tracer().Debugf("converted %d commands to absolute", len(out))
	return out, nil
}
