package style

// defaultKeywords are the baseline CSS-ish keywords every engine needs
// before any stylesheet can reference them in a value-definition grammar
// or a declaration value - layout keywords, display modes, and the
// handful of global values (inherit/initial/unset) every property syntax
// implicitly allows.
var defaultKeywords = []string{
	"none", "auto", "inherit", "initial", "unset",
	"block", "inline", "flex", "grid", "hidden",
	"left", "right", "center", "top", "bottom", "middle",
	"row", "column", "row-reverse", "column-reverse",
	"flex-start", "flex-end", "space-between", "space-around", "stretch",
	"solid", "dashed", "dotted", "double", "groove", "ridge", "none-border",
	"normal", "bold", "italic", "underline",
	"visible", "scroll", "clip", "ellipsis",
	"static", "relative", "absolute", "fixed", "sticky",
}

// SeedDefaultKeywords registers defaultKeywords into reg, assigning each
// the next available id in declaration order (so ids are stable across
// runs as long as the list itself doesn't change order). This is a
// SUPPLEMENTED FEATURE: the grammar describes keyword registration as a
// primitive but leaves seeding a concrete baseline vocabulary to the
// host; most real stylesheets need these from the first rule they load.
func SeedDefaultKeywords(reg *KeywordRegistry) error {
	next := reg.Count()
	for _, name := range defaultKeywords {
		if _, ok := reg.KeyOf(name); ok {
			continue
		}
		if err := reg.Register(next, name); err != nil {
			return err
		}
		next++
	}
	return nil
}
