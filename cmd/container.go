package cmd

import (
	"time"

	"go.uber.org/dig"

	"github.com/rios0rios0/reqdiff/application"
	"github.com/rios0rios0/reqdiff/config"
	"github.com/rios0rios0/reqdiff/domain"
	parserPkg "github.com/rios0rios0/reqdiff/infrastructure/parser"
	"github.com/rios0rios0/reqdiff/infrastructure/parser/gomod"
	"github.com/rios0rios0/reqdiff/infrastructure/parser/npm"
	"github.com/rios0rios0/reqdiff/infrastructure/parser/requirements"
	"github.com/rios0rios0/reqdiff/infrastructure/parser/terraform"
	renderPkg "github.com/rios0rios0/reqdiff/infrastructure/render"
	"github.com/rios0rios0/reqdiff/infrastructure/source"
)

// registerProviders registers all constructors with the DIG container.
func registerProviders(container *dig.Container, cfg *config.Config) error {
	if err := container.Provide(func() *config.Config { return cfg }); err != nil {
		return err
	}
	if err := container.Provide(newParserRegistry); err != nil {
		return err
	}
	if err := container.Provide(newRendererRegistry); err != nil {
		return err
	}
	if err := container.Provide(newSource); err != nil {
		return err
	}
	if err := container.Provide(application.NewDiffService); err != nil {
		return err
	}
	return nil
}

// newParserRegistry builds the registry with every supported manifest format.
func newParserRegistry() *parserPkg.Registry {
	reg := parserPkg.NewRegistry()
	reg.Register(requirements.New())
	reg.Register(gomod.New())
	reg.Register(npm.New())
	reg.Register(terraform.New())
	return reg
}

// newRendererRegistry builds the registry with every output format.
func newRendererRegistry() *renderPkg.Registry {
	reg := renderPkg.NewRegistry()
	reg.Register(renderPkg.NewTableRenderer())
	reg.Register(renderPkg.NewJSONRenderer())
	reg.Register(renderPkg.NewMarkdownRenderer())
	return reg
}

func newSource(cfg *config.Config) domain.Source {
	return source.NewLoader(
		cfg.Source.Token,
		time.Duration(cfg.Source.TimeoutSeconds)*time.Second,
	)
}

// injectDiffService builds the DI container and resolves the diff service.
func injectDiffService(cfg *config.Config) (*application.DiffService, error) {
	container := dig.New()

	if err := registerProviders(container, cfg); err != nil {
		return nil, err
	}

	var service *application.DiffService
	if err := container.Invoke(func(s *application.DiffService) {
		service = s
	}); err != nil {
		return nil, err
	}

	return service, nil
}
