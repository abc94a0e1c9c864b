package mcp

import "github.com/mark3labs/mcp-go/mcp"

// recommendMoviesTool defines the recommend_movies MCP tool.
var recommendMoviesTool = mcp.NewTool("recommend_movies",
	mcp.WithDescription("Recommend movies similar to a given title based on genre, director, cast, and plot similarity."),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("Movie title to find recommendations for; typos and partial titles are tolerated"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of recommendations to return (1-20, default 5)"),
	),
	mcp.WithString("sort_by",
		mcp.Description("Display order of the recommendations"),
		mcp.Enum("similarity", "rating"),
	),
)

// resolveTitleTool defines the resolve_title MCP tool.
var resolveTitleTool = mcp.NewTool("resolve_title",
	mcp.WithDescription("Resolve a possibly misspelled or partial movie title to catalog entries without producing recommendations."),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("Movie title to resolve"),
	),
)

// catalogStatsTool defines the catalog_stats MCP tool.
var catalogStatsTool = mcp.NewTool("catalog_stats",
	mcp.WithDescription("Get aggregate statistics about the loaded movie catalog: size, genre popularity, year and rating distributions."),
)
