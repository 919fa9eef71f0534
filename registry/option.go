package registry

import "github.com/viant/idmanager"

// Option configures a registry Service
type Option func(s *Service)

// WithManagerOptions sets options applied to every session manager. The
// session prefix always overrides any prefix given here.
func WithManagerOptions(options ...idmanager.Option) Option {
	return func(s *Service) {
		s.managerOptions = append(s.managerOptions, options...)
	}
}

// WithConfig applies a manager config to every session manager. An invalid
// config makes Open fail with the validation error.
func WithConfig(cfg *idmanager.Config) Option {
	return func(s *Service) {
		if err := cfg.Validate(); err != nil {
			s.configErr = err
			return
		}
		s.managerOptions = append(s.managerOptions, cfg.Options()...)
	}
}

// WithAnonymousTemplate sets the template name used when Open receives none
func WithAnonymousTemplate(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.anonymousTemplate = name
		}
	}
}
