package postgres

const eventColumns = `id, title, description, location, date_time, image_url, category,
       price, attendees, is_hot, created_at, updated_at`

const listEventsSQL = `
SELECT ` + eventColumns + `
FROM events
ORDER BY created_at, id
`

const getEventSQL = `
SELECT ` + eventColumns + `
FROM events WHERE id = $1
`

const insertEventSQL = `
INSERT INTO events (
  id, title, description, location, date_time, image_url, category,
  price, attendees, is_hot, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
`

const upsertEventSQL = `
INSERT INTO events (
  id, title, description, location, date_time, image_url, category,
  price, attendees, is_hot, created_at, updated_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$11)
ON CONFLICT (id) DO UPDATE SET
  title=EXCLUDED.title, description=EXCLUDED.description,
  location=EXCLUDED.location, date_time=EXCLUDED.date_time,
  image_url=EXCLUDED.image_url, category=EXCLUDED.category,
  price=EXCLUDED.price, attendees=EXCLUDED.attendees,
  is_hot=EXCLUDED.is_hot, updated_at=EXCLUDED.updated_at
`

const clubColumns = `id, name, description, location, image_url, rating, upcoming_events`

const listClubsSQL = `
SELECT ` + clubColumns + `
FROM clubs
ORDER BY created_at, id
`

const getClubSQL = `
SELECT ` + clubColumns + `
FROM clubs WHERE id = $1
`

const upsertClubSQL = `
INSERT INTO clubs (` + clubColumns + `, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (id) DO UPDATE SET
  name=EXCLUDED.name, description=EXCLUDED.description,
  location=EXCLUDED.location, image_url=EXCLUDED.image_url,
  rating=EXCLUDED.rating, upcoming_events=EXCLUDED.upcoming_events
`
