package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prefs is the serialized form of a buffer's option record. Field names
// follow the option names of the command language.
type Prefs struct {
	Tabs        bool `yaml:"tabs"`
	ShiftTabs   bool `yaml:"shift_tabs"`
	TabSize     int  `yaml:"tab_size"`
	Insert      bool `yaml:"insert"`
	WordWrap    bool `yaml:"word_wrap"`
	RightMargin int  `yaml:"right_margin"`
	FreeForm    bool `yaml:"free_form"`
	PreserveCR  bool `yaml:"preserve_cr"`
	Binary      bool `yaml:"binary"`
	ReadOnly    bool `yaml:"read_only"`
	DoUndo      bool `yaml:"do_undo"`
	AutoIndent  bool `yaml:"auto_indent"`
	AutoPrefs   bool `yaml:"auto_prefs"`
	NoFileReq   bool `yaml:"no_file_req"`
	UTF8Auto    bool `yaml:"utf8auto"`
	CaseSearch  bool `yaml:"case_search"`
	SearchBack  bool `yaml:"search_back"`
	HexCode     bool `yaml:"hex_code"`
	VisualBell  bool `yaml:"visual_bell"`
	AutoMatch   int  `yaml:"automatch"`
	CurClip     int  `yaml:"cur_clip"`
	Syntax      string `yaml:"syntax,omitempty"`
}

// SavePrefs writes p as YAML.
func SavePrefs(path string, p *Prefs) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save prefs %s: %w", path, err)
	}
	return nil
}

// LoadPrefs reads a YAML prefs file.
func LoadPrefs(path string) (*Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse prefs %s: %w", path, err)
	}
	return &p, nil
}

// AutoPrefsPath maps a filename extension to its auto-prefs file under dir.
func AutoPrefsPath(dir, ext string) string {
	return filepath.Join(dir, ext+".yaml")
}
