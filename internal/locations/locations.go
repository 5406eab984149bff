package locations

import "sort"

// Tabla canónica departamento → municipios de El Salvador usada para el
// par de selects dependientes de la dirección del destinatario.
var municipalitiesByDepartment = map[string][]string{
	"San Salvador": {"San Salvador", "Soyapango", "Mejicanos", "Apopa", "Santa Tecla", "Ciudad Delgado", "Ilopango", "Tonacatepeque", "San Martín", "Cuscatancingo", "San Marcos", "Ayutuxtepeque", "Antiguo Cuscatlán", "Nejapa", "Panchimalco", "Santo Tomás", "Santiago Texacuangos", "Guazapa", "El Paisnal", "Rosario de Mora"},
	"La Libertad":  {"Santa Tecla", "Antiguo Cuscatlán", "Colón", "La Libertad", "San Juan Opico", "Ciudad Arce", "Quezaltepeque", "Zaragoza", "Nuevo Cuscatlán"},
	"Santa Ana":    {"Santa Ana", "Chalchuapa", "Metapán"},
	"San Miguel":   {"San Miguel", "Chinameca"},
	"Sonsonate":    {"Sonsonate", "Acajutla"},
	"Usulután":     {"Usulután"},
	"Ahuachapán":   {"Ahuachapán"},
	"La Paz":       {"Zacatecoluca"},
	"La Unión":     {"La Unión"},
	"Cuscatlán":    {"Cojutepeque"},
	"Chalatenango": {"Chalatenango"},
	"Morazán":      {"San Francisco Gotera"},
	"San Vicente":  {"San Vicente"},
	"Cabañas":      {"Sensuntepeque"},
}

// Departments devuelve la lista de departamentos en orden estable.
func Departments() []string {
	deps := make([]string, 0, len(municipalitiesByDepartment))
	for dep := range municipalitiesByDepartment {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return deps
}

// Municipalities devuelve los municipios permitidos para un departamento,
// o nil si el departamento no existe.
func Municipalities(department string) []string {
	muns, ok := municipalitiesByDepartment[department]
	if !ok {
		return nil
	}
	out := make([]string, len(muns))
	copy(out, muns)
	return out
}

// IsValid indica si el municipio pertenece al departamento.
func IsValid(department, municipality string) bool {
	for _, mun := range municipalitiesByDepartment[department] {
		if mun == municipality {
			return true
		}
	}
	return false
}
