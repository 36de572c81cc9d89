package config

// DeepMerge combines layers left to right. When both sides hold a map the
// maps are merged recursively, otherwise the later value replaces the earlier
// one. Inputs are not modified.
func DeepMerge(layers ...map[string]any) map[string]any {
	out := map[string]any{}
	for _, layer := range layers {
		mergeInto(out, layer)
	}
	return out
}

func mergeInto(dst, src map[string]any) {
	for key, value := range src {
		srcMap, srcIsMap := value.(map[string]any)
		if !srcIsMap {
			dst[key] = value
			continue
		}
		dstMap, dstIsMap := dst[key].(map[string]any)
		if !dstIsMap {
			dstMap = map[string]any{}
		}
		merged := copyMap(dstMap)
		mergeInto(merged, srcMap)
		dst[key] = merged
	}
}

func copyMap(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for key, value := range src {
		if nested, ok := value.(map[string]any); ok {
			out[key] = copyMap(nested)
			continue
		}
		out[key] = value
	}
	return out
}
