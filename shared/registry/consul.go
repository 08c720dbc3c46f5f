package registry

import (
	"fmt"

	capi "github.com/hashicorp/consul/api"
	"github.com/rs/zerolog"
)

// ServiceRegistration describes a service instance to register with consul.
type ServiceRegistration struct {
	ID         string
	Name       string
	Address    string
	Port       int
	HealthPort int
}

// Registry registers and deregisters service instances with a consul agent.
type Registry struct {
	client *capi.Client
	logger *zerolog.Logger
}

// NewRegistry connects to the consul agent at the given address.
func NewRegistry(consulAddr string, logger *zerolog.Logger) (*Registry, error) {
	cfg := capi.DefaultConfig()
	cfg.Address = consulAddr

	client, err := capi.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create consul client: %w", err)
	}

	return &Registry{client: client, logger: logger}, nil
}

// Register adds the service instance to the consul catalog with a gRPC health
// check pointed at the instance's health port.
func (r *Registry) Register(reg ServiceRegistration) error {
	serviceReg := &capi.AgentServiceRegistration{
		ID:      reg.ID,
		Name:    reg.Name,
		Address: reg.Address,
		Port:    reg.Port,
		Check: &capi.AgentServiceCheck{
			GRPC:                           fmt.Sprintf("%s:%d", reg.Address, reg.HealthPort),
			Interval:                       "10s",
			Timeout:                        "3s",
			DeregisterCriticalServiceAfter: "1m",
		},
	}

	if err := r.client.Agent().ServiceRegister(serviceReg); err != nil {
		return fmt.Errorf("failed to register %s with consul: %w", reg.Name, err)
	}

	r.logger.Info().Str("service", reg.Name).Str("id", reg.ID).Msg("registered with consul")

	return nil
}

// Deregister removes the service instance from the consul catalog.
func (r *Registry) Deregister(serviceID string) {
	if err := r.client.Agent().ServiceDeregister(serviceID); err != nil {
		r.logger.Error().Err(err).Str("id", serviceID).Msg("failed to deregister from consul")
	}
}
