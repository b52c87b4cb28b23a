package validators

// Errors acumula mensagens de validação por campo, no mesmo
// formato retornado pelos endpoints (422)
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Empty() bool {
	return len(e) == 0
}
