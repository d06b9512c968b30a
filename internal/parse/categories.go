package parse

// categorySynonyms maps category identifiers to the Spanish vocabulary
// that hints at them. Used to build the assisted-extraction prompt;
// unknown categories fall back to their own identifier.
var categorySynonyms = map[string][]string{
	"personal":       {"personal", "privado", "mío", "propio"},
	"delegado":       {"delegar", "delegado", "asignar", "encargar", "pasar a"},
	"en_espera":      {"espera", "esperando", "pendiente", "a la espera", "esperar"},
	"ideas":          {"idea", "ideas", "sugerencia", "sugerencias", "propuesta", "propuestas", "mejora", "mejoras"},
	"llamar":         {"llamar", "llamada", "llamadas", "telefonear", "contactar por teléfono", "hablar por teléfono"},
	"presupuestos":   {"presupuesto", "presupuestos", "cotización", "cotizaciones", "precio", "precios", "coste", "costes"},
	"visitas":        {"visita", "visitas", "ir a ver", "reunión presencial", "cita", "citas"},
	"administracion": {"administración", "admin", "administrativo", "papeles", "documentación", "trámite", "trámites"},
	"reclamaciones":  {"reclamación", "reclamaciones", "queja", "quejas", "reclamo", "reclamos"},
	"calidad":        {"calidad", "control calidad", "qc", "aseguramiento calidad"},
	"comercial":      {"comercial", "ventas", "venta", "cliente nuevo", "prospección"},
	"incidencias":    {"incidencia", "incidencias", "problema", "problemas", "fallo", "fallos", "error", "errores", "bug", "bugs"},
}

// CategorySynonyms returns the hint vocabulary for a category
// identifier.
func CategorySynonyms(name string) []string {
	if synonyms, ok := categorySynonyms[name]; ok {
		return synonyms
	}
	return []string{name}
}
