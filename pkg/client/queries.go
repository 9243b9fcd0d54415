package client

import "fmt"

// The three fixed query documents. They run strictly in order: the event query
// is scoped by the eventId of the first WIP item from the profile query.

const profileQuery = `
{
    user {
        id
        login
        attrs
        campus
        labels {
            labelId
            labelName
        }
        createdAt
        updatedAt
        auditRatio
        totalUp
        totalUpBonus
        totalDown
    }

    wip: progress (
        where: {isDone: {_eq: false}, grade : {_is_null: true}}
        order_by: [{createdAt: asc}]
    ){
        id
        eventId
        createdAt
        updatedAt
        path
        group{
            members{
                userLogin
            }
        }
    }
}`

const skillsQuery = `{
  skills: transaction(
      order_by: [{ type: desc }, { amount: desc }]
      distinct_on: [type]
      where: { type: { _like: "skill_%" } }
  ) {
      objectId
      eventId
      type
      amount
      createdAt
  }
}`

// eventQuery builds the event-scoped document. eventID may be the 0 sentinel
// when the user has nothing in progress; the server decides what that yields.
func eventQuery(eventID int) string {
	return fmt.Sprintf(`
{
  completed: result (
      order_by: [{createdAt: desc}]
      where: { isLast: { _eq: true}, type : {_nin: ["tester", "admin_audit", "dedicated_auditors_for_event"]}}
  ) {
      objectId
      path
      createdAt
      group{
          members{
              userLogin
          }
      }
  }

  xp_view: transaction(
      order_by: [{ createdAt: desc }]
      where: { type: { _like: "xp" }, eventId: {_eq: %d}}
  ) {
      objectId
      path
      amount
      createdAt
  }

  audits: transaction(
      order_by: [{ createdAt: desc }]
      where: { type: { _in: ["up", "down"] }, eventId: {_eq: %d}}
  ) {
      attrs
      type
      objectId
      path
      amount
      createdAt
  }
}`, eventID, eventID)
}
