package util

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Connection is an undirected graph of names. Nodes keep the order in which they were first seen.
type Connection struct {
	edges SetMap[string, string]
	nodes []string
}

func NewConnection(elements ...string) *Connection {
	c := &Connection{edges: NewSetMap[string, string]()}
	for _, e := range elements {
		c.addNode(e)
	}
	return c
}

func (c *Connection) addNode(elem string) {
	if _, ok := c.edges[elem]; ok {
		return
	}
	c.edges[elem] = mapset.NewThreadUnsafeSet[string]()
	c.nodes = append(c.nodes, elem)
}

func (c *Connection) Connect(u, v string) {
	c.addNode(u)
	c.addNode(v)
	c.edges.Add(u, v)
	c.edges.Add(v, u)
}

func (c *Connection) Nodes() []string {
	return c.nodes
}

func (c *Connection) Degree(elem string) int {
	return c.edges.Get(elem).Cardinality()
}

// GetConnection returns the nodes reachable from elem within distance hops, elem included.
// A negative distance means no limit.
func (c *Connection) GetConnection(elem string, distance int) mapset.Set[string] {
	if distance < 0 {
		distance = len(c.nodes)
	}
	visited := mapset.NewThreadUnsafeSet(elem)
	queue := c.edges.Get(elem).Clone()
	for i := 0; i < distance && !queue.IsEmpty(); i++ {
		visited = visited.Union(queue)
		nextQueue := mapset.NewThreadUnsafeSet[string]()
		for q := range queue.Iter() {
			nextQueue = nextQueue.Union(c.edges.Get(q))
		}
		queue = nextQueue.Difference(visited)
	}
	return visited
}

// GetClusters returns the connected components. Clusters and their members follow node order.
func (c *Connection) GetClusters() [][]string {
	visited := mapset.NewThreadUnsafeSet[string]()
	clusters := make([][]string, 0)
	for _, elem := range c.nodes {
		if visited.Contains(elem) {
			continue
		}
		reachable := c.GetConnection(elem, -1)
		cluster := make([]string, 0, reachable.Cardinality())
		for _, n := range c.nodes {
			if reachable.Contains(n) {
				cluster = append(cluster, n)
			}
		}
		clusters = append(clusters, cluster)
		visited = visited.Union(reachable)
	}
	return clusters
}
