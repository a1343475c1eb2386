package provider

import (
	"github.com/wso2/identity-event-analytics-service/internal/events/service"
)

// EventsProviderInterface defines the interface for the events provider.
type EventsProviderInterface interface {
	GetEventsService() service.EventsServiceInterface
}

// EventsProvider is the default implementation of the EventsProviderInterface.
type EventsProvider struct{}

// NewEventsProvider creates a new instance of EventsProvider.
func NewEventsProvider() EventsProviderInterface {

	return &EventsProvider{}
}

// GetEventsService returns the events service instance.
func (ep *EventsProvider) GetEventsService() service.EventsServiceInterface {

	return service.GetEventsService()
}
