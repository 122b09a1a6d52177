package infra

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/shopspring/decimal"
)

// StoreNode is the graph projection of a store.
type StoreNode struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// ItemNode is the graph projection of an item; it BELONGS_TO its store node.
// Version orders writes to the same item: the node keeps the highest version
// it has seen and ignores older upserts and deletes.
type ItemNode struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	TypeName string          `json:"type_name"`
	Price    decimal.Decimal `json:"price"`
	StoreID  string          `json:"store_id"`
	Version  int64           `json:"version"`
}

// StoreGraphStats is read back for store analytics.
type StoreGraphStats struct {
	StoreName    string
	TotalItems   int64
	AveragePrice float64
	ItemTypes    []string
}

// GraphClient writes store/item identity into Neo4j and runs analytics reads.
type GraphClient struct {
	driver   neo4j.DriverWithContext
	database string
}

func NewGraphClient(ctx context.Context, uri, user, password string) (*GraphClient, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4j: create driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4j: verify connectivity: %w", err)
	}
	return &GraphClient{driver: driver, database: "neo4j"}, nil
}

func (g *GraphClient) Close(ctx context.Context) error { return g.driver.Close(ctx) }

// Ping checks that the graph store is reachable.
func (g *GraphClient) Ping(ctx context.Context) error { return g.driver.VerifyConnectivity(ctx) }

func (g *GraphClient) run(ctx context.Context, cypher string, params map[string]any) (*neo4j.EagerResult, error) {
	return neo4j.ExecuteQuery(ctx, g.driver, cypher, params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(g.database))
}

func (g *GraphClient) UpsertStore(ctx context.Context, s StoreNode) error {
	_, err := g.run(ctx,
		`MERGE (g:Grocery {id: $id})
		 SET g.name = $name, g.location = $location`,
		map[string]any{"id": s.ID, "name": s.Name, "location": s.Location})
	if err != nil {
		return fmt.Errorf("neo4j: upsert store %s: %w", s.ID, err)
	}
	return nil
}

// UpsertItem writes i unless the node already carries a newer version.
// A tombstoned node is revived by a newer upsert.
func (g *GraphClient) UpsertItem(ctx context.Context, i ItemNode) error {
	price, _ := i.Price.Float64()
	_, err := g.run(ctx,
		`MERGE (i:Item {id: $id})
		 WITH i WHERE coalesce(i.version, -1) <= $version
		 SET i.name = $name, i.type = $type, i.price = $price,
		     i.version = $version, i.deleted = false
		 WITH i
		 OPTIONAL MATCH (i)-[old:BELONGS_TO]->(prev:Grocery) WHERE prev.id <> $store_id
		 DELETE old
		 WITH DISTINCT i
		 MERGE (g:Grocery {id: $store_id})
		 MERGE (i)-[:BELONGS_TO]->(g)`,
		map[string]any{
			"id": i.ID, "name": i.Name, "type": i.TypeName, "price": price,
			"store_id": i.StoreID, "version": i.Version,
		})
	if err != nil {
		return fmt.Errorf("neo4j: upsert item %s: %w", i.ID, err)
	}
	return nil
}

// DeleteItem tombstones the node at version so a delayed older upsert
// cannot bring it back.
func (g *GraphClient) DeleteItem(ctx context.Context, id string, version int64) error {
	_, err := g.run(ctx,
		`MERGE (i:Item {id: $id})
		 WITH i WHERE coalesce(i.version, -1) <= $version
		 SET i.deleted = true, i.version = $version
		 WITH i
		 OPTIONAL MATCH (i)-[r:BELONGS_TO]->()
		 DELETE r`,
		map[string]any{"id": id, "version": version})
	if err != nil {
		return fmt.Errorf("neo4j: delete item %s: %w", id, err)
	}
	return nil
}

// StoreStats returns ok=false when the store has no node yet.
func (g *GraphClient) StoreStats(ctx context.Context, storeID string) (StoreGraphStats, bool, error) {
	res, err := g.run(ctx,
		`MATCH (g:Grocery {id: $id})
		 OPTIONAL MATCH (i:Item)-[:BELONGS_TO]->(g) WHERE NOT coalesce(i.deleted, false)
		 RETURN g.name AS name, count(i) AS total_items, avg(i.price) AS avg_price,
		        collect(DISTINCT i.type) AS item_types`,
		map[string]any{"id": storeID})
	if err != nil {
		return StoreGraphStats{}, false, fmt.Errorf("neo4j: store analytics %s: %w", storeID, err)
	}
	if len(res.Records) == 0 {
		return StoreGraphStats{}, false, nil
	}

	rec := res.Records[0]
	var stats StoreGraphStats
	if v, ok := rec.Get("name"); ok {
		stats.StoreName, _ = v.(string)
	}
	if v, ok := rec.Get("total_items"); ok {
		stats.TotalItems, _ = v.(int64)
	}
	if v, ok := rec.Get("avg_price"); ok {
		stats.AveragePrice, _ = v.(float64)
	}
	if v, ok := rec.Get("item_types"); ok {
		if list, ok := v.([]any); ok {
			for _, t := range list {
				if s, ok := t.(string); ok {
					stats.ItemTypes = append(stats.ItemTypes, s)
				}
			}
		}
	}
	return stats, true, nil
}
