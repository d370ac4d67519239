package registration

// Sanitize returns a copy of f where empty optional fields are replaced by nil,
// for the primary guest and every companion. The backend reads nil as "absent".
func (f FormData) Sanitize() FormData {
	out := f.Clone()
	out.Guest = out.Guest.sanitized()
	for i := range out.Companions {
		out.Companions[i] = out.Companions[i].sanitized()
	}
	return out
}

func (g Guest) sanitized() Guest {
	g.SecondSurname = emptyToNil(g.SecondSurname)
	g.Email = emptyToNil(g.Email)
	g.Phone = emptyToNil(g.Phone)
	return g
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
