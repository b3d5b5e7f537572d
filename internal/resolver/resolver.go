// Package resolver computes output namespaces and directories for every
// artifact kind from the configuration and per-run namespace overrides.
package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/lab2view/laravel-repository-generator/internal/utils"
	"github.com/sirupsen/logrus"
)

// Target is where artifacts of one kind live
type Target struct {
	Kind      models.ArtifactKind
	Namespace string
	Dir       string
	BaseFile  string // Base artifact file name, excluded from collisions
}

// Path returns the full path of file inside the target directory
func (t Target) Path(file string) string {
	return filepath.Join(t.Dir, file)
}

// BasePath returns the full path of the base artifact, or "" when the kind
// has none
func (t Target) BasePath() string {
	if t.BaseFile == "" {
		return ""
	}
	return t.Path(t.BaseFile)
}

// Resolver resolves targets for one run. Targets are computed once and never
// change afterwards.
type Resolver struct {
	cfg        models.GeneratorConfig
	projectDir string
	appPath    string
	autoload   *psr4
	targets    map[models.ArtifactKind]Target
}

// New builds the resolver. Namespace overrides outside the application root
// namespace are rejected with a configuration error.
func New(cfg models.GeneratorConfig, opts models.RunOptions) (*Resolver, error) {
	projectDir := opts.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}

	r := &Resolver{
		cfg:        cfg,
		projectDir: projectDir,
		autoload:   newPSR4(),
		targets:    make(map[models.ArtifactKind]Target),
	}
	r.appPath = r.abs(cfg.AppPath)
	r.autoload.add(cfg.RootNamespace, r.appPath)
	r.autoload.loadComposer(projectDir)

	defaults := map[models.ArtifactKind]func() Target{
		models.KindModel: func() Target {
			return Target{Namespace: cfg.ModelsNamespace, Dir: r.abs(cfg.ModelsDirectory)}
		},
		models.KindContract: func() Target {
			return Target{Namespace: cfg.ContractsNamespace, Dir: r.abs(cfg.ContractsDirectory), BaseFile: cfg.BaseContractFile}
		},
		models.KindRepository: func() Target {
			return Target{Namespace: cfg.RepositoriesNamespace, Dir: r.abs(cfg.RepositoriesDirectory), BaseFile: cfg.BaseRepositoryFile}
		},
		models.KindPolicy: func() Target {
			return Target{Namespace: cfg.PoliciesNamespace, Dir: r.abs(cfg.PoliciesDirectory), BaseFile: cfg.BasePolicyFile}
		},
	}

	for _, kind := range []models.ArtifactKind{models.KindModel, models.KindContract, models.KindPolicy, models.KindRepository} {
		target := defaults[kind]()
		target.Kind = kind
		target.Namespace = GenerateNamespace(target.Namespace)

		if override := opts.Override(kind); override != "" {
			target.Namespace = GenerateNamespace(override)
			target.Dir = r.FileNamespace(target.Namespace)
			if target.Dir == "" {
				return nil, models.NewConfigError(override,
					fmt.Errorf("%s namespace must be inside the %s namespace", kind, cfg.RootNamespace))
			}
		}

		logrus.Debugf("Resolved %s target: %s => %s", kind, target.Namespace, target.Dir)
		r.targets[kind] = target
	}

	return r, nil
}

// Target returns the resolved target for kind
func (r *Resolver) Target(kind models.ArtifactKind) Target {
	return r.targets[kind]
}

// AppPath returns the absolute application directory
func (r *Resolver) AppPath() string {
	return r.appPath
}

// FileNamespace maps a namespace under the root namespace to its directory
// below the application path. Other namespaces map to "".
func (r *Resolver) FileNamespace(ns string) string {
	root := r.cfg.RootNamespace
	if ns == "" {
		return ""
	}
	if _, ok := trimPrefixFold(ns, root); ok && len(ns) == len(root) {
		return r.appPath
	}
	rest, ok := trimPrefixFold(ns, root+Separator)
	if !ok {
		return ""
	}
	return filepath.Join(r.appPath, filepath.FromSlash(strings.ReplaceAll(rest, Separator, "/")))
}

// ClassFile returns the file that autoloads class, if its namespace is mapped
func (r *Resolver) ClassFile(class string) (string, bool) {
	ns := NamespaceOf(class)
	dir, ok := r.autoload.dir(ns)
	if !ok {
		return "", false
	}
	return filepath.Join(dir, ShortName(class)+".php"), true
}

// ClassDir returns the directory of class, if its namespace is mapped
func (r *Resolver) ClassDir(class string) (string, bool) {
	file, ok := r.ClassFile(class)
	if !ok {
		return "", false
	}
	return filepath.Dir(file), true
}

// ClassExists reports whether class can be loaded from the project
func (r *Resolver) ClassExists(class string) bool {
	if class == "" {
		return false
	}
	file, ok := r.ClassFile(class)
	return ok && utils.FileExists(file)
}

func (r *Resolver) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(r.projectDir, path)
}
