package repositories

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mayank/campustrack/internal/app/models"
)

// branchSeatGuard builds a filter that matches a batch document only
// while some branch satisfies both the name match and the seat
// condition. $elemMatch cannot carry $expr, so the proof runs as a
// top-level $expr over a $map of the branches array.
func branchSeatGuard(year int, name models.Department, seatCond bson.M) bson.M {
	return bson.M{
		"year": year,
		"$expr": bson.M{
			"$anyElementTrue": bson.M{
				"$map": bson.M{
					"input": "$branches",
					"as":    "b",
					"in": bson.M{
						"$and": bson.A{
							bson.M{"$eq": bson.A{"$$b.name", name}},
							seatCond,
						},
					},
				},
			},
		},
	}
}

// seatAvailableFilter matches while the branch has a free seat.
func seatAvailableFilter(year int, name models.Department) bson.M {
	return branchSeatGuard(year, name, bson.M{
		"$lt": bson.A{"$$b.currentSeatCount", "$$b.totalStudentsIntake"},
	})
}

// seatOccupiedFilter matches while the branch has at least one occupant.
func seatOccupiedFilter(year int, name models.Department) bson.M {
	return branchSeatGuard(year, name, bson.M{
		"$gt": bson.A{"$$b.currentSeatCount", 0},
	})
}

// occupancyUpdate increments the targeted branch occupancy and the batch
// total together, so both counters move in the same write.
func occupancyUpdate(delta int) bson.M {
	return bson.M{"$inc": bson.M{
		"branches.$[b].currentSeatCount": delta,
		"totalEnrolledStudents":          delta,
	}}
}

// branchArrayFilters targets the named branch for the $inc above.
func branchArrayFilters(name models.Department) options.ArrayFilters {
	return options.ArrayFilters{
		Filters: []interface{}{bson.M{"b.name": name}},
	}
}

// vacantSeatsPipeline shapes a batch document into the vacancy report:
// aggregate intake and availability at batch level, then reshape the
// branches array into a name-keyed object of per-branch vacancies.
func vacantSeatsPipeline(year int) mongo.Pipeline {
	totalIntake := bson.M{"$sum": "$branches.totalStudentsIntake"}
	totalOccupied := bson.M{"$sum": "$branches.currentSeatCount"}

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"year": year}}},
		{{Key: "$project", Value: bson.M{
			"_id":                 0,
			"batch":               "$year",
			"totalStudents":       "$totalEnrolledStudents",
			"totalStudentsIntake": totalIntake,
			// Availability derives from the branches themselves, not the
			// totalEnrolledStudents counter: a direct occupancy patch via
			// UpdateBranch moves only the branch field.
			"availableIntake": bson.M{
				"$subtract": bson.A{totalIntake, totalOccupied},
			},
			"branches": bson.M{
				"$map": bson.M{
					"input": "$branches",
					"as":    "branch",
					"in": bson.M{
						"k": "$$branch.name",
						"v": bson.M{
							"totalStudents":       "$$branch.currentSeatCount",
							"totalStudentsIntake": "$$branch.totalStudentsIntake",
							"availableIntake": bson.M{
								"$subtract": bson.A{"$$branch.totalStudentsIntake", "$$branch.currentSeatCount"},
							},
						},
					},
				},
			},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"branch": bson.M{"$arrayToObject": "$branches"},
		}}},
		{{Key: "$project", Value: bson.M{"branches": 0}}},
	}
}
