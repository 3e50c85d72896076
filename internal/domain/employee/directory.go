package employee

// UnknownName labels punches whose employee id is not in the directory.
// An unregistered badge still produces data; it must not break a report.
const UnknownName = "Desconhecido"

// Directory maps clock enrollment ids to display names. It is read-only
// input to the reconciliation engine; in production it is loaded from
// configuration.
type Directory map[string]string

// NameFor resolves an employee id, falling back to UnknownName.
func (d Directory) NameFor(id string) string {
	if name, ok := d[id]; ok {
		return name
	}
	return UnknownName
}

// Names returns every display name in the directory.
func (d Directory) Names() []string {
	names := make([]string, 0, len(d))
	for _, name := range d {
		names = append(names, name)
	}
	return names
}
