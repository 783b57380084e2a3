// Package content holds the static portfolio data set rendered by the ui and served by the api.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/leighmacdonald/folio/internal/contact"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

var (
	ErrContentRead    = errors.New("failed to read content file")
	ErrContentDecode  = errors.New("failed to decode content")
	ErrContentInvalid = errors.New("invalid content")
)

type Profile struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
	Tagline  string `yaml:"tagline"`
	Bio      string `yaml:"bio"`
	LinkedIn string `yaml:"linkedin"`
	GitHub   string `yaml:"github"`
	Resume   string `yaml:"resume"`
	// ResumeFilename is the name suggested to the user when downloading.
	ResumeFilename string `yaml:"resume_filename"`
}

type Education struct {
	Institution string   `yaml:"institution"`
	Degree      string   `yaml:"degree"`
	Location    string   `yaml:"location"`
	Period      string   `yaml:"period"`
	GPA         string   `yaml:"gpa"`
	Courses     []string `yaml:"courses"`
}

type Job struct {
	Title            string   `yaml:"title"`
	Company          string   `yaml:"company"`
	Location         string   `yaml:"location"`
	Period           string   `yaml:"period"`
	Type             string   `yaml:"type"`
	Description      string   `yaml:"description"`
	Responsibilities []string `yaml:"responsibilities"`
	Technologies     []string `yaml:"technologies"`
}

type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	Achievements []string `yaml:"achievements"`
	GitHubURL    string   `yaml:"github_url"`
	LiveURL      string   `yaml:"live_url"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Years int    `yaml:"years"`
}

type SkillGroup struct {
	Name   string  `yaml:"name"`
	Skills []Skill `yaml:"skills"`
}

type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Testimonial struct {
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
	Company  string `yaml:"company"`
	Message  string `yaml:"message"`
	Rating   int    `yaml:"rating"`
}

// Counters are the numeric statistics reported by the stats endpoint.
type Counters struct {
	Projects        int `yaml:"projects"`
	Technologies    int `yaml:"technologies"`
	YearsExperience int `yaml:"years_experience"`
}

type Portfolio struct {
	Profile          Profile       `yaml:"profile"`
	Education        []Education   `yaml:"education"`
	Experience       []Job         `yaml:"experience"`
	Projects         []Project     `yaml:"projects"`
	Skills           []SkillGroup  `yaml:"skills"`
	Statistics       []Stat        `yaml:"statistics"`
	Counters         Counters      `yaml:"counters"`
	Testimonials     []Testimonial `yaml:"testimonials"`
	ContactResponses []string      `yaml:"contact_responses"`
}

// Default returns the embedded portfolio.
func Default() (Portfolio, error) {
	return Parse(defaultDocument)
}

// Load reads a portfolio document from disk, falling back to the embedded one for an empty path.
func Load(path string) (Portfolio, error) {
	if path == "" {
		return Default()
	}

	body, errRead := os.ReadFile(path)
	if errRead != nil {
		return Portfolio{}, errors.Join(errRead, ErrContentRead)
	}

	return Parse(body)
}

func Parse(body []byte) (Portfolio, error) {
	var portfolio Portfolio
	if err := yaml.Unmarshal(body, &portfolio); err != nil {
		return Portfolio{}, errors.Join(err, ErrContentDecode)
	}

	if err := portfolio.Validate(); err != nil {
		return Portfolio{}, err
	}

	return portfolio, nil
}

func (p Portfolio) Validate() error {
	if p.Profile.Name == "" {
		return fmt.Errorf("%w: profile name is required", ErrContentInvalid)
	}

	if len(p.ContactResponses) == 0 {
		return fmt.Errorf("%w: at least one contact response is required", ErrContentInvalid)
	}

	for _, group := range p.Skills {
		for _, skill := range group.Skills {
			if skill.Level < 0 || skill.Level > 100 {
				return fmt.Errorf("%w: skill level must be 0-100: %s", ErrContentInvalid, skill.Name)
			}
		}
	}

	return nil
}

// Stats converts the counters into the api representation.
func (p Portfolio) Stats(totalContacts int) contact.Stats {
	projects := p.Counters.Projects
	if projects == 0 {
		projects = len(p.Projects)
	}

	return contact.Stats{
		TotalProjects:   projects,
		TotalContacts:   totalContacts,
		Technologies:    p.Counters.Technologies,
		YearsExperience: p.Counters.YearsExperience,
	}
}

// ResumeFilename returns the configured download name or a generic one.
func (p Portfolio) ResumeFilename() string {
	if p.Profile.ResumeFilename != "" {
		return p.Profile.ResumeFilename
	}

	return "resume.pdf"
}
