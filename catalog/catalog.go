package catalog

import "net/http"

// Default returns the built-in action catalog.
func Default() []Node {
	return []Node{
		{
			ID:    "finanzas",
			Label: "Finanzas",
			Children: []Node{
				{ID: "finanzas-11", Label: "Informe Siniestralidad"},
				{ID: "finanzas-12", Label: "Informe Primas"},
				{ID: "finanzas-13", Label: "Informe Comisiones"},
			},
		},
		{
			ID:    "comercial",
			Label: "Comercial",
			Children: []Node{
				{
					ID:    "comercial-21",
					Label: "Visión Comercial",
					Children: []Node{
						visionNode("comercial-211", "Sucursal"),
						visionNode("comercial-212", "DC"),
						visionNode("comercial-213", "Mediador"),
					},
				},
				{ID: "comercial-22", Label: "FTE"},
			},
		},
		{
			ID:    "ine",
			Label: "Estadísticas INE",
			Children: []Node{
				{ID: "ine-31", Label: "PIB"},
				{ID: "ine-32", Label: "Población"},
				{ID: "ine-33", Label: "Turismo"},
			},
		},
	}
}

// visionNode builds one Visión Comercial leaf. The nivel is fixed per
// leaf; the user's input binds to unidad.
func visionNode(id, nivel string) Node {
	return Node{
		ID:         id,
		Label:      nivel,
		NeedsInput: true,
		Request: &RequestTemplate{
			Path:   "/v1/action_cards/vision_comercial",
			Method: http.MethodGet,
			Params: ParamRule{
				Fixed:      map[string]string{"nivel": nivel},
				InputField: "unidad",
			},
		},
	}
}

// Automations returns the quick automation options.
func Automations() []Automation {
	return []Automation{
		{ID: "contabilidad", Label: "Facturas Contabilidad Inversiones"},
		{ID: "transaccionales", Label: "Facturas Op. Transaccionales"},
		{ID: "contratos", Label: "Contratos SLA", RunPath: "/v1/automations/contratos_sla"},
	}
}

// Find locates a node by id anywhere in the tree, or nil.
func Find(nodes []Node, id string) *Node {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}
		if found := Find(nodes[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}
