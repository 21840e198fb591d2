// Package database is the gateway to the relational store.
//
// Every flow acquires its own private connection, uses it for one round trip
// and releases it, so there is no pool and nothing is shared between flows:
//
//	err := gw.WithConnection(ctx, func(ctx context.Context, conn *database.Connection) error {
//	    if err := repos.Users(conn).Create(ctx, u); err != nil {
//	        return err
//	    }
//	    return conn.Commit()
//	})
//
// Connection failures surface as *common.ConnectionError, statement and
// commit failures as *common.QueryError. Connection parameters come from
// config.Database and are fixed for the life of the process.
package database
