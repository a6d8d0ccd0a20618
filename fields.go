package replica

import (
	"reflect"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the clone tag with sentinel
	sentinel.Tag("clone")
}

// fieldMode selects how a single struct field is copied.
type fieldMode uint8

const (
	fieldDeep    fieldMode = iota // recursive clone (default)
	fieldShallow                  // copy the reference without descending
	fieldSkip                     // leave the zero value
)

// fieldPlan describes how to copy a single field.
type fieldPlan struct {
	index []int  // reflect.Value.FieldByIndex access path
	name  string // field name for diagnostics
	mode  fieldMode
}

// typePlan is the per-type traversal plan derived from metadata.
type typePlan struct {
	typeName string
	fields   []fieldPlan
	opaque   bool // type has unexported fields the engine cannot restore
}

// buildTypePlan derives a traversal plan from rt's field metadata.
// Unrecognized clone tag values fall back to a deep copy; a bad tag
// must not break the never-fails contract at clone time.
func buildTypePlan(rt reflect.Type) *typePlan {
	meta := scanType(rt)
	plan := &typePlan{
		typeName: meta.TypeName,
		fields:   make([]fieldPlan, 0, len(meta.Fields)),
	}

	for _, field := range meta.Fields {
		mode := fieldDeep
		switch field.Tags["clone"] {
		case "skip":
			mode = fieldSkip
		case "shallow":
			mode = fieldShallow
		}
		plan.fields = append(plan.fields, fieldPlan{
			index: field.Index,
			name:  field.Name,
			mode:  mode,
		})
	}

	for i := 0; i < rt.NumField(); i++ {
		if !rt.Field(i).IsExported() {
			plan.opaque = true
			break
		}
	}

	return plan
}

// scanType returns sentinel metadata for rt, building it on demand for
// types sentinel has not already scanned.
func scanType(rt reflect.Type) sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok {
		return meta
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        cloneTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		meta.Fields = append(meta.Fields, fm)
	}

	return meta
}

// cloneTags extracts the clone tag from a struct tag.
func cloneTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	if val, ok := tag.Lookup("clone"); ok {
		tags["clone"] = val
	}
	return tags
}
