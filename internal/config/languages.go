package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Language maps a display-language code onto the aggregator's language code,
// the name used when prompting the generative service, and the default city
// for the weather masthead.
type Language struct {
	Code        string `yaml:"code"`
	Aggregator  string `yaml:"aggregator"`
	PromptName  string `yaml:"prompt_name"`
	WeatherCity string `yaml:"weather_city"`
}

// LanguagesConfig is the YAML config structure
// languages:
//   - code: es
//     aggregator: es
//     prompt_name: Spanish (Spain/Latin America)
type LanguagesConfig struct {
	Languages []Language `yaml:"languages"`
}

// DefaultLanguages covers the languages the frontend ships with.
func DefaultLanguages() []Language {
	return []Language{
		{Code: "en", Aggregator: "en", PromptName: "English", WeatherCity: "London"},
		{Code: "es", Aggregator: "es", PromptName: "Spanish (Spain/Latin America)", WeatherCity: "Madrid"},
		{Code: "fr", Aggregator: "fr", PromptName: "French", WeatherCity: "Paris"},
		{Code: "ar", Aggregator: "ar", PromptName: "Arabic", WeatherCity: "دبي"},
	}
}

// LoadLanguages reads the language table from a YAML file. A missing file is
// not an error: the built-in table is returned instead.
func LoadLanguages(path string) ([]Language, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultLanguages(), nil
		}
		return nil, err
	}
	defer f.Close()

	var cfg LanguagesConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(cfg.Languages) == 0 {
		return DefaultLanguages(), nil
	}
	return cfg.Languages, nil
}

// LanguageFor returns the table entry for code, falling back to English the
// way the frontend does for unknown codes.
func LanguageFor(langs []Language, code string) Language {
	for _, l := range langs {
		if l.Code == code {
			return l
		}
	}
	for _, l := range langs {
		if l.Code == "en" {
			return l
		}
	}
	return Language{Code: code, Aggregator: "en", PromptName: "English"}
}
