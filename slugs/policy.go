package slugs

// Entity kinds wired through the slug lifecycle. Adding a sluggable kind is
// a constant plus a registration here plus the Sluggable methods on the model.
const (
	KindProvider  = "provider"
	KindClient    = "client"
	KindService   = "service"
	KindArticle   = "article"
	KindCountry   = "country"
	KindLanguage  = "language"
	KindJob       = "job"
	KindHardSkill = "hard-skill"
	KindSoftSkill = "soft-skill"
	KindTag       = "tag"
)

// Sluggable is implemented by every model whose slug the lifecycle maintains.
type Sluggable interface {
	// SlugKind tags the entity kind for policy lookup.
	SlugKind() string
	// SlugSource builds the text the slug is derived from.
	SlugSource() string
	// CurrentSlug returns the stored slug, empty before first generation.
	CurrentSlug() string
	SetSlug(slug string)
}

// Policy declares how one entity kind is slugged. Person names get a random
// suffix because they collide often; titles and reference names do not.
type Policy struct {
	Kind       string
	WithSuffix bool
}

// Current reports whether slug is still derived from source, so an update
// that never touched a source field keeps its slug (suffix included).
func (p Policy) Current(slug, source string) bool {
	base := Slugify(source)
	if slug == "" || base == "" {
		return false
	}
	if !p.WithSuffix {
		return slug == base
	}
	return IsSuffixed(base, slug)
}

var registry = map[string]Policy{}

// Register adds or replaces the policy for a kind.
func Register(p Policy) {
	registry[p.Kind] = p
}

// PolicyFor looks up the policy registered for kind.
func PolicyFor(kind string) (Policy, bool) {
	p, ok := registry[kind]
	return p, ok
}

func init() {
	for _, p := range []Policy{
		{Kind: KindProvider, WithSuffix: true},
		{Kind: KindClient, WithSuffix: true},
		{Kind: KindService},
		{Kind: KindArticle},
		{Kind: KindCountry},
		{Kind: KindLanguage},
		{Kind: KindJob},
		{Kind: KindHardSkill},
		{Kind: KindSoftSkill},
		{Kind: KindTag},
	} {
		Register(p)
	}
}
