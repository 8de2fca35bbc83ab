package dashboard

// Band is a named colour of a threshold scale.
type Band struct {
	Name  string `json:"nombre"`
	Color string `json:"color"`
}

var (
	BandVerde    = Band{Name: "verde", Color: "#4CAF50"}
	BandNaranja  = Band{Name: "naranja", Color: "#FF9800"}
	BandAmarillo = Band{Name: "amarillo", Color: "#FFEB3B"}
	BandRojo     = Band{Name: "rojo", Color: "#F44336"}
)

// PercentageBand colours a coverage percentage.
func PercentageBand(pct float64) Band {
	switch {
	case pct >= 100:
		return BandVerde
	case pct >= 70:
		return BandNaranja
	case pct >= 40:
		return BandAmarillo
	default:
		return BandRojo
	}
}

// Semaforo is the map colour of a unit by its number of agents.
type Semaforo struct {
	Name    string `json:"nombre"`
	Normal  string `json:"normal"`
	Intenso string `json:"intenso"`
	Border  string `json:"borde"`
}

var (
	SemaforoAzul     = Semaforo{Name: "azul", Normal: "#90CAF9", Intenso: "#2196F3", Border: "#1565C0"}
	SemaforoVerde    = Semaforo{Name: "verde", Normal: "#A5D6A7", Intenso: "#4CAF50", Border: "#388E3C"}
	SemaforoNaranja  = Semaforo{Name: "naranja", Normal: "#FFCC80", Intenso: "#FF9800", Border: "#F57C00"}
	SemaforoAmarillo = Semaforo{Name: "amarillo", Normal: "#FFF59D", Intenso: "#FFEB3B", Border: "#FBC02D"}
	SemaforoRojo     = Semaforo{Name: "rojo", Normal: "#EF9A9A", Intenso: "#F44336", Border: "#D32F2F"}
	SemaforoSinDatos = Semaforo{Name: "sinDatos", Normal: "#E0E0E0", Intenso: "#9E9E9E", Border: "#757575"}
)

// SemaforoByAgentes colours a unit relative to the target of capPerUnit agents:
// orange from capPerUnit-3 agents, yellow from capPerUnit-6, red below.
func SemaforoByAgentes(n, capPerUnit int) Semaforo {
	switch {
	case n <= 0:
		return SemaforoSinDatos
	case n > capPerUnit:
		return SemaforoAzul
	case n == capPerUnit:
		return SemaforoVerde
	case n >= capPerUnit-3:
		return SemaforoNaranja
	case n >= capPerUnit-6:
		return SemaforoAmarillo
	default:
		return SemaforoRojo
	}
}

// Palette maps category labels to colours. Unknown labels get Default.
type Palette struct {
	Colors  map[string]string
	Default string
}

func (p Palette) Color(label string) string {
	if c, ok := p.Colors[label]; ok {
		return c
	}
	return p.Default
}

var (
	// EstadoPMO colours deliverable states.
	EstadoPMO = Palette{
		Colors: map[string]string{
			"Completado":  "#22c55e",
			"En progreso": "#3b82f6",
			"Pendiente":   "#eab308",
			"Atrasado":    "#ef4444",
			"En riesgo":   "#f97316",
		},
		Default: "#6b7280",
	}

	// EstadoKPI colours KPI states and results.
	EstadoKPI = Palette{
		Colors: map[string]string{
			"Cumplido":    "green",
			"En proceso":  "blue",
			"Pendiente":   "yellow",
			"No cumplido": "red",
			"En riesgo":   "orange",
			"En alerta":   "pink",
		},
		Default: "gray",
	}
)

var chartColors = []string{
	"#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6",
	"#ec4899", "#06b6d4", "#84cc16", "#f97316", "#6366f1",
}

// ChartColor cycles through the chart palette.
func ChartColor(i int) string {
	if i < 0 {
		i = -i
	}
	return chartColors[i%len(chartColors)]
}
