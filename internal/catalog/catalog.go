// Package catalog serves the read-only course catalog the store's records refer to by id.
package catalog

import (
	_ "embed"
	"fmt"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/util"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed courses.yaml
var defaultCatalog []byte

type courseEntry struct {
	ID            string  `yaml:"id"`
	Title         string  `yaml:"title"`
	Instructor    string  `yaml:"instructor"`
	Description   string  `yaml:"description"`
	Image         string  `yaml:"image"`
	Price         float64 `yaml:"price"`
	OriginalPrice float64 `yaml:"original_price"`
	Rating        int     `yaml:"rating"`
	Reviews       int     `yaml:"reviews"`
	Students      int     `yaml:"students"`
	Category      string  `yaml:"category"`
	Badge         string  `yaml:"badge"`
	Lessons       int     `yaml:"lessons"`
	Hours         int     `yaml:"hours"`
	Level         string  `yaml:"level"`
	InstagramURL  string  `yaml:"instagram_url"`
}

type catalogFile struct {
	Featured   string           `yaml:"featured"`
	Categories []model.Category `yaml:"categories"`
	Courses    []courseEntry    `yaml:"courses"`
}

// Catalog indexes courses by id. It is immutable after Load.
type Catalog struct {
	featured   string
	courses    []model.Course
	byID       map[string]model.Course
	categories []model.Category
}

// Load reads the catalog at path, or the built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = b
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		featured:   file.Featured,
		byID:       make(map[string]model.Course, len(file.Courses)),
		categories: file.Categories,
	}
	if c.categories == nil {
		c.categories = []model.Category{}
	}

	for _, e := range file.Courses {
		if e.ID == "" {
			return nil, fmt.Errorf("parse catalog: course without id")
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate course id %q", e.ID)
		}
		course := e.toModel()
		c.courses = append(c.courses, course)
		c.byID[course.ID] = course
	}
	return c, nil
}

func (e courseEntry) toModel() model.Course {
	return model.Course{
		ID:            e.ID,
		Title:         e.Title,
		Instructor:    e.Instructor,
		Description:   e.Description,
		Image:         e.Image,
		Price:         decimal.NewFromFloat(e.Price),
		OriginalPrice: decimal.NewFromFloat(e.OriginalPrice),
		Rating:        e.Rating,
		Reviews:       e.Reviews,
		Students:      e.Students,
		Category:      e.Category,
		Badge:         e.Badge,
		Lessons:       e.Lessons,
		Hours:         e.Hours,
		Level:         e.Level,
		InstagramURL:  e.InstagramURL,
	}
}

func (c *Catalog) Courses() []model.Course {
	return append([]model.Course{}, c.courses...)
}

func (c *Catalog) Course(id string) (model.Course, error) {
	course, ok := c.byID[id]
	if !ok {
		return model.Course{}, util.ErrCourseNotFound
	}
	return course, nil
}

func (c *Catalog) Featured() (model.Course, bool) {
	course, ok := c.byID[c.featured]
	return course, ok
}

// ByCategory lists the courses of a category; limit <= 0 means no limit.
func (c *Catalog) ByCategory(category string, limit int) []model.Course {
	out := []model.Course{}
	for _, course := range c.courses {
		if course.Category != category {
			continue
		}
		out = append(out, course)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Related lists other courses of the same category. Unknown ids yield nothing.
func (c *Catalog) Related(courseID string, limit int) []model.Course {
	course, ok := c.byID[courseID]
	if !ok {
		return []model.Course{}
	}
	out := []model.Course{}
	for _, other := range c.courses {
		if other.Category != course.Category || other.ID == courseID {
			continue
		}
		out = append(out, other)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (c *Catalog) Categories() []model.Category {
	return append([]model.Category{}, c.categories...)
}
