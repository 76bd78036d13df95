package attrs

// Merge combines sources left to right into a single attribute set. Each
// source may be a *Map, Pairs, a Go map or any other value ValueOf accepts;
// sources that are not mappings or lists are skipped.
//
// Per key, after coercion:
//
//  1. false deletes the key;
//  2. positional entries are appended and never overwrite;
//  3. two structured values merge recursively (token sets by union);
//  4. value-like attributes keep an explicit string, even an empty one;
//  5. any other empty value deletes the key;
//  6. everything else overwrites.
func (r *Renderer) Merge(sources ...any) (*Map, error) {
	result := NewMap()
	for _, src := range sources {
		v, err := convert(src, 0, r.maxDepth)
		if err != nil {
			return nil, err
		}
		if !v.structured() {
			continue
		}
		for k, item := range v.asMap().All() {
			if err := r.mergeEntry(result, k, item, "", 1); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

func (r *Renderer) mergeEntry(dst *Map, k Key, raw Value, parent string, depth int) error {
	if depth > r.maxDepth {
		return ErrDepthExceeded
	}

	name := k.String()
	if parent != "" {
		name = parent + "-" + name
	}

	v, err := r.coerce(name, raw, depth)
	if err != nil {
		return err
	}

	if v.IsFalse() {
		if !k.Positional {
			dst.Delete(k)
		}
		return nil
	}

	if k.Positional {
		if v.IsEmpty() {
			return nil
		}
		nv, err := r.normalize(name, v, depth)
		if err != nil {
			return err
		}
		if dst.Has(k) {
			dst.Append(nv)
		} else {
			dst.Put(k, nv)
		}
		return nil
	}

	emptyAllowed := r.classify(name) == ClassEmptyAllowed

	if prev, ok := dst.Lookup(k); ok && mergeable(prev, v) {
		merged, err := r.mergeValues(name, prev, v, depth)
		if err != nil {
			return err
		}
		if merged.IsEmpty() && !emptyAllowed {
			dst.Delete(k)
			return nil
		}
		dst.Put(k, merged)
		return nil
	}

	if emptyAllowed && v.Kind() == KindString {
		dst.Put(k, v)
		return nil
	}

	nv, err := r.normalize(name, v, depth)
	if err != nil {
		return err
	}
	if nv.IsEmpty() {
		dst.Delete(k)
		return nil
	}
	dst.Put(k, nv)
	return nil
}

// normalize runs nested mappings through the merge policy so that a value
// merged once and a value merged again compare equal.
func (r *Renderer) normalize(name string, v Value, depth int) (Value, error) {
	if v.Kind() != KindMap {
		return v, nil
	}
	out := NewMap()
	for k, item := range v.Map().All() {
		if err := r.mergeEntry(out, k, item, name, depth+1); err != nil {
			return Value{}, err
		}
	}
	return MapValue(out), nil
}

func (r *Renderer) mergeValues(name string, prev, next Value, depth int) (Value, error) {
	switch {
	case prev.Kind() == KindTokens && next.Kind() == KindTokens:
		return Tokens(prev.Tokens().Union(next.Tokens())), nil
	case prev.Kind() == KindList && next.Kind() == KindList:
		items := make([]Value, 0, len(prev.List())+len(next.List()))
		items = append(items, prev.List()...)
		items = append(items, next.List()...)
		return List(items...), nil
	}

	out := prev.asMap().Clone()
	for k, item := range next.asMap().All() {
		if err := r.mergeEntry(out, k, item, name, depth+1); err != nil {
			return Value{}, err
		}
	}
	return MapValue(out), nil
}

func mergeable(prev, next Value) bool {
	if prev.Kind() == KindTokens || next.Kind() == KindTokens {
		return prev.Kind() == next.Kind()
	}
	return prev.structured() && next.structured()
}
