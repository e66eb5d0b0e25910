package graphql

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.81

import (
	"context"

	"github.com/google/uuid"
)

// FindCustomerByID is the resolver for the findCustomerByID field.
func (r *entityResolver) FindCustomerByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return &Customer{ID: id}, nil
}

// FindProjectByID is the resolver for the findProjectByID field.
func (r *entityResolver) FindProjectByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	return &Project{ID: id}, nil
}

// Entity returns EntityResolver implementation.
func (r *Resolver) Entity() EntityResolver { return &entityResolver{r} }

type entityResolver struct{ *Resolver }
