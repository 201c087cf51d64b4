package catalog

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/util"

	"github.com/shopspring/decimal"
)

const RelatedLimit = 3

var (
	fallbackPrice         = decimal.RequireFromString("5.99")
	fallbackOriginalPrice = decimal.RequireFromString("39.99")

	standardMultiplier = decimal.RequireFromString("1.5")
	premiumMultiplier  = decimal.RequireFromString("2.2")
)

var planNamesByCategory = map[string][3]string{
	"illustration": {"Principiante", "Dibujante", "Artista"},
	"design":       {"Aprendiz", "Diseñador", "Creativo"},
	"photography":  {"Aficionado", "Fotógrafo", "Profesional"},
	"video":        {"Novato", "Editor", "Cineasta"},
	"3d":           {"Iniciado", "Modelador", "Animator"},
	"marketing":    {"Estudiante", "Estratega", "Experto"},
	"web":          {"Junior", "Developer", "Senior"},
	"craft":        {"Aprendiz", "Artesano", "Maestro"},
}

var defaultPlanNames = [3]string{model.DefaultPlanName, "Estándar", "Premium"}

func PlanNames(category string) [3]string {
	if names, ok := planNamesByCategory[category]; ok {
		return names
	}
	return defaultPlanNames
}

// Plans returns the basic, standard and premium tiers for a course. Standard costs
// 1.5x and premium 2.2x the course price, both rounded to cents.
func Plans(course model.Course) []model.Plan {
	price := course.Price
	if price.IsZero() {
		price = fallbackPrice
	}
	original := course.OriginalPrice
	if original.IsZero() {
		original = fallbackOriginalPrice
	}
	names := PlanNames(course.Category)

	return []model.Plan{
		{
			ID:            model.DefaultPlanID,
			Name:          names[0],
			Price:         price,
			OriginalPrice: original,
			Duration:      model.DefaultPlanDuration,
			Features: []string{
				"Acceso al curso completo",
				"Videos en calidad HD",
				"Recursos descargables",
				"Comunidad de estudiantes",
				"Soporte por email",
			},
		},
		{
			ID:            "standard",
			Name:          names[1],
			Price:         price.Mul(standardMultiplier).Round(2),
			OriginalPrice: original.Mul(standardMultiplier).Round(2),
			Duration:      "6 meses de acceso",
			Features: []string{
				"Todo lo del plan " + names[0],
				"Videos en calidad 4K",
				"Proyectos prácticos adicionales",
				"Certificado de finalización",
				"Soporte prioritario",
				"Actualizaciones del curso",
			},
			Popular: true,
		},
		{
			ID:            "premium",
			Name:          names[2],
			Price:         price.Mul(premiumMultiplier).Round(2),
			OriginalPrice: original.Mul(premiumMultiplier).Round(2),
			Duration:      "Acceso de por vida",
			Features: []string{
				"Todo lo del plan " + names[1],
				"Acceso ilimitado de por vida",
				"Sesión 1-a-1 con el instructor",
				"Material exclusivo premium",
				"Acceso a todos los cursos futuros",
				"Membresía en comunidad VIP",
				"Soporte 24/7",
			},
		},
	}
}

// Plan finds one tier of a course by id.
func Plan(course model.Course, planID string) (model.Plan, error) {
	for _, p := range Plans(course) {
		if p.ID == planID {
			return p, nil
		}
	}
	return model.Plan{}, util.ErrPlanNotFound
}
