package state

// Field names one of the process-wide string fields.
type Field string

const (
	FieldTwitch  Field = "twitch"
	FieldYoutube Field = "youtube"
)

// Fields holds the free-form values shared by every window.
type Fields interface {
	Get(Field) string
	Set(Field, string)
	Snapshot() map[Field]string
}

type fields struct {
	values map[Field]string
}

func NewFields() Fields {
	return &fields{values: make(map[Field]string, 2)}
}

func (f *fields) Get(name Field) string {
	return f.values[name]
}

// Set overwrites the value. Neither the name nor the value is validated.
func (f *fields) Set(name Field, value string) {
	f.values[name] = value
}

func (f *fields) Snapshot() map[Field]string {
	dup := make(map[Field]string, len(f.values))
	for k, v := range f.values {
		dup[k] = v
	}
	return dup
}
