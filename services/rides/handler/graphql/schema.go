package graphql

import (
	"fmt"
	"time"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/evproyectos/aventados-isw-server/services/rides"
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

func rideField(typ graphql.Output, get func(r *models.Ride) interface{}) *graphql.Field {
	return &graphql.Field{
		Type: typ,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			ride, ok := p.Source.(*models.Ride)
			if !ok {
				return nil, fmt.Errorf("unexpected source %T", p.Source)
			}
			return get(ride), nil
		},
	}
}

var rideType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Ride",
	Fields: graphql.Fields{
		"id": rideField(graphql.NewNonNull(graphql.ID), func(r *models.Ride) interface{} {
			return r.ID.String()
		}),
		"driverId": rideField(graphql.NewNonNull(graphql.ID), func(r *models.Ride) interface{} {
			return r.DriverID.String()
		}),
		"origin": rideField(graphql.NewNonNull(graphql.String), func(r *models.Ride) interface{} {
			return r.Origin
		}),
		"destination": rideField(graphql.NewNonNull(graphql.String), func(r *models.Ride) interface{} {
			return r.Destination
		}),
		"departureTime": rideField(graphql.NewNonNull(graphql.String), func(r *models.Ride) interface{} {
			return r.DepartureTime.UTC().Format(time.RFC3339)
		}),
		"availableSeats": rideField(graphql.NewNonNull(graphql.Int), func(r *models.Ride) interface{} {
			return r.AvailableSeats
		}),
		"fee": rideField(graphql.NewNonNull(graphql.Float), func(r *models.Ride) interface{} {
			return r.Fee
		}),
	},
})

// NewSchema builds the read-only ride schema backed by rideUC
func NewSchema(rideUC rides.RideUC) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"rides": &graphql.Field{
				Type:        graphql.NewList(rideType),
				Description: "Rides whose destination contains the given text, case-insensitive",
				Args: graphql.FieldConfigArgument{
					"destination": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					destination, _ := p.Args["destination"].(string)
					return rideUC.SearchRides(p.Context, destination)
				},
			},
			"ride": &graphql.Field{
				Type: rideType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					raw, _ := p.Args["id"].(string)
					id, err := uuid.Parse(raw)
					if err != nil {
						return nil, fmt.Errorf("invalid ride id")
					}
					return rideUC.GetRide(p.Context, id)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}
