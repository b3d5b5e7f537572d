package models

// GeneratorConfig holds the key-value configuration that supplies default
// directories, namespaces and base artifacts.
type GeneratorConfig struct {
	// Application root
	AppPath       string `yaml:"app_path"`
	RootNamespace string `yaml:"root_namespace"`
	UserClass     string `yaml:"user_class"`

	// Directories
	ModelsDirectory       string `yaml:"models_directory"`
	ContractsDirectory    string `yaml:"contracts_directory"`
	RepositoriesDirectory string `yaml:"repositories_directory"`
	PoliciesDirectory     string `yaml:"policies_directory"`

	// Namespaces
	ModelsNamespace       string `yaml:"models_namespace"`
	ContractsNamespace    string `yaml:"contracts_namespace"`
	RepositoriesNamespace string `yaml:"repositories_namespace"`
	PoliciesNamespace     string `yaml:"policies_namespace"`

	// Base artifacts. Files are bare names looked up in the matching directory.
	BaseRepositoryFile    string `yaml:"base_repository_file"`
	BaseRepositoryClass   string `yaml:"base_repository_class"`
	BaseContractFile      string `yaml:"base_contract_file"`
	BaseContractInterface string `yaml:"base_contract_interface"`
	BasePolicyFile        string `yaml:"base_policy_file"`
	BasePolicyClass       string `yaml:"base_policy_class"`

	// Optional directory of custom <Name>.stub files
	StubsPath string `yaml:"stubs_path,omitempty"`

	// Gitignore-style patterns of model files to leave out
	ExcludeModels []string `yaml:"exclude_models,omitempty"`
}

// RunOptions are the per-invocation flags of one generation run
type RunOptions struct {
	ProjectDir string

	Contracts bool
	Policies  bool

	// Namespace overrides keyed by kind; empty means use the configuration
	ModelsNamespace       string
	ContractsNamespace    string
	RepositoriesNamespace string
	PoliciesNamespace     string

	Force         bool // Answer yes to the overwrite prompt
	NoInteraction bool // Answer no to the overwrite prompt
	Diff          bool // Show changes before overwriting
}

// Override returns the namespace override for kind, if any
func (o RunOptions) Override(kind ArtifactKind) string {
	switch kind {
	case KindModel:
		return o.ModelsNamespace
	case KindContract:
		return o.ContractsNamespace
	case KindRepository:
		return o.RepositoriesNamespace
	case KindPolicy:
		return o.PoliciesNamespace
	default:
		return ""
	}
}
