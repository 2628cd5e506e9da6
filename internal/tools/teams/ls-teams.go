package teams

import (
	"fmt"

	"github.com/reallyasi9/nbapredict/internal/tools/render"
)

// LsTeams prints the roster, with efficiency profiles if ctx.AsOf is set.
func LsTeams(ctx *Context) error {
	teams := ctx.Roster.Teams()
	if ctx.AsOf != nil {
		profiles, err := ctx.Service.Profiles(ctx, *ctx.AsOf)
		if err != nil {
			return fmt.Errorf("LsTeams: failed to get team stats: %w", err)
		}
		for i, t := range teams {
			if p, ok := profiles[t.ID]; ok {
				p := p
				teams[i].Profile = &p
			}
		}
	}
	render.WriteTeams(ctx.Output, teams)
	return nil
}
