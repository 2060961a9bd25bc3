/*
Package mesh holds the node and element data model and the topology queries used by the mesh
creators and the finite element kernels.

Nodes live in an arena (Mesh.Nodes) and elements reference them by index, so rewriting a node
position in place is seen by every element that uses it. The adjacency index is maintained on
every AppendElement and always equals the element list filtered by membership.

Welding coincident points on insertion uses a Welder. LinearWelder scans all nodes and costs
O(n) per insertion, O(n^2) for a whole mesh. HashWelder buckets nodes on an epsilon sized grid
and keeps the same result: the lowest index node within epsilon wins. The tolerance and the
strategy are changed with SetEpsilon and SetWelder so the buckets always match the node list.
*/
package mesh
