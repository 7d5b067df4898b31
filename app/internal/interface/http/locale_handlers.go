package http

import "net/http"

func (a *API) handleFAQ(w http.ResponseWriter, r *http.Request) {
	l := getLocale(r.Context())
	entries := a.translator.FAQ(l)

	items := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		items = append(items, map[string]string{"question": e.Question, "answer": e.Answer})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"title":    a.translator.Lookup(l, "faq.title"),
		"subtitle": a.translator.Lookup(l, "faq.subtitle"),
		"items":    items,
	})
}

func (a *API) handleDictionary(w http.ResponseWriter, r *http.Request) {
	l := getLocale(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"locale":    l,
		"name":      l.Name(),
		"direction": l.Direction(),
		"alternate": l.Alternate(),
		"messages":  a.translator.Messages(l),
	})
}
