package main

import (
	"github.com/Valentina9990/top-talent/cmd"
	_ "github.com/Valentina9990/top-talent/docs"
)

// @title                       Top Talent API
// @version                     1.0
// @description                 Player and school directory for youth football.
// @host                        localhost:8088
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cmd.Execute()
}
