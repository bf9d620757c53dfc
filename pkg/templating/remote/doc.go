// Package remote provides a templating.Engine for templates kept outside the
// code: in an embedded file system, on disk or in S3-compatible storage.
//
// A template document may start with YAML frontmatter whose "defaults" map
// fills variables the caller does not provide:
//
//	---
//	defaults:
//	  product: Acme
//	---
//	Hello {{ name }}, welcome to {{ product }}.
//
// # Usage
//
//	//go:embed templates
//	var templates embed.FS
//
//	sub, _ := fs.Sub(templates, "templates")
//	engine := remote.New(remote.FSLoader(sub, ".md"), remote.WithInner(markdown.New()))
//
//	m := fluentmail.New(sender, fluentmail.WithTemplateEngine(engine))
//	m.Addressees(to).Subject("Welcome").HTML(true).
//		Template(remote.Options{Key: "welcome", Mapping: templating.Mapping{"name": "Ann"}}).
//		Send(ctx)
//
// # Storage and Caching
//
// StorageLoader reads documents from object storage. Wrap it in CachedLoader
// to avoid a fetch per message:
//
//	loader := remote.CachedLoader(
//		remote.StorageLoader(store, "templates", ".md", 0),
//		cache.NewRedis[string](client, nil, cache.WithPrefix("mail-templates")),
//		10*time.Minute,
//	)
package remote
