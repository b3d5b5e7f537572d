package resolver

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// psr4 maps namespace prefixes to directories
type psr4 struct {
	prefixes []string // longest first
	dirs     map[string]string
}

func newPSR4() *psr4 {
	return &psr4{dirs: make(map[string]string)}
}

// add registers prefix (without trailing separator) at dir
func (p *psr4) add(prefix, dir string) {
	prefix = strings.Trim(prefix, Separator)
	key := strings.ToLower(prefix)
	if _, ok := p.dirs[key]; ok {
		return
	}
	p.dirs[key] = filepath.Clean(dir)
	p.prefixes = append(p.prefixes, prefix)
	sort.SliceStable(p.prefixes, func(i, j int) bool {
		return len(p.prefixes[i]) > len(p.prefixes[j])
	})
}

// loadComposer reads the psr-4 sections of composer.json in projectDir
func (p *psr4) loadComposer(projectDir string) {
	data, err := os.ReadFile(filepath.Join(projectDir, "composer.json"))
	if err != nil {
		return
	}
	if !gjson.ValidBytes(data) {
		logrus.Warn("Ignoring invalid composer.json")
		return
	}

	for _, section := range []string{"autoload.psr-4", "autoload-dev.psr-4"} {
		gjson.GetBytes(data, section).ForEach(func(key, value gjson.Result) bool {
			dir := value.String()
			if value.IsArray() {
				dir = value.Get("0").String()
			}
			if dir != "" {
				p.add(key.String(), filepath.Join(projectDir, dir))
				logrus.Debugf("Autoload %s => %s", key.String(), dir)
			}
			return true
		})
	}
}

// dir returns the directory holding namespace ns
func (p *psr4) dir(ns string) (string, bool) {
	ns = strings.Trim(ns, Separator)
	for _, prefix := range p.prefixes {
		base := p.dirs[strings.ToLower(prefix)]
		if strings.EqualFold(ns, prefix) {
			return base, true
		}
		if rest, ok := trimPrefixFold(ns, prefix+Separator); ok {
			return filepath.Join(base, filepath.FromSlash(strings.ReplaceAll(rest, Separator, "/"))), true
		}
	}
	return "", false
}
